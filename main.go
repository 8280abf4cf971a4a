// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"medihub-api/controllers"
	"medihub-api/middleware"
	"medihub-api/routes"
	"medihub-api/utils"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("ACCESS_TOKEN_SECRET"))

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	emailService := utils.NewEmailService()
	processor := utils.NewPaymentClient()
	roles := middleware.NewUserRoles(client)

	// Initialize controllers
	authController := controllers.NewAuthController()
	userController := controllers.NewUserController(client)
	productController := controllers.NewProductController(client)
	bannerController := controllers.NewBannerController(client)
	orderController := controllers.NewOrderController(client)
	paymentController := controllers.NewPaymentController(client, processor, emailService)
	chartController := controllers.NewChartController(client)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, roles, authController, userController, productController, bannerController, orderController, paymentController, chartController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	fmt.Printf("MediHub server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
