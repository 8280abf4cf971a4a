// utils/email.go
package utils

import (
	"fmt"
	"medihub-api/models"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService handles sending emails using SendGrid
type EmailService struct {
	client *sendgrid.Client
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		panic("SENDGRID_API_KEY is not set in environment variables")
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("MediHub", os.Getenv("EMAIL_SENDER"))
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}

// SendPaymentReceipt sends a settlement receipt to the payer
func (es *EmailService) SendPaymentReceipt(toEmail string, payment models.Payment) error {
	subject := "Payment Received - MediHub"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>We have received your payment of <strong>$%.2f</strong> covering %d order(s).<br>Transaction ID: <strong>%s</strong><br><br>Thank you for shopping with MediHub!",
		payment.Price,
		len(payment.OrderIDs),
		payment.TransactionID,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
