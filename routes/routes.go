// routes/routes.go
package routes

import (
	"medihub-api/controllers"
	"medihub-api/middleware"
	"medihub-api/models"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes with their gate stages. Routes
// declare zero, one (token), or two (token + role) stages; no route
// combines two roles.
func RegisterRoutes(
	router *mux.Router,
	roles middleware.RoleFinder,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	bannerController *controllers.BannerController,
	orderController *controllers.OrderController,
	paymentController *controllers.PaymentController,
	chartController *controllers.ChartController,
) {
	gated := func(h http.HandlerFunc) http.Handler {
		return middleware.Authenticate(h)
	}
	roleGated := func(role string, h http.HandlerFunc) http.Handler {
		return middleware.Authenticate(middleware.RequireRole(roles, role)(h))
	}

	// Liveness
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("MediHub server is running"))
	}).Methods("GET")

	// Token issue
	router.HandleFunc("/jwt", authController.IssueToken).Methods("POST")

	// User routes. /users/role must be registered before /users/{email}
	// so the literal segment wins the match.
	router.HandleFunc("/users", userController.CreateUser).Methods("POST")
	router.HandleFunc("/users/role/{email}", userController.GetUserRole).Methods("GET")
	router.Handle("/users/role/{id}", roleGated(models.RoleAdmin, userController.UpdateUserRole)).Methods("PATCH")
	router.Handle("/users/profile/{email}", gated(userController.UpdateProfile)).Methods("PATCH")
	router.Handle("/users/{email}", roleGated(models.RoleAdmin, userController.GetUsers)).Methods("GET")
	router.Handle("/user/{id}", roleGated(models.RoleAdmin, userController.DeleteUser)).Methods("DELETE")
	router.Handle("/userdata/{email}", gated(userController.GetUserData)).Methods("GET")

	// Product routes
	router.Handle("/products", roleGated(models.RoleSeller, productController.CreateProduct)).Methods("POST")
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/category/{category}", productController.GetProductsByCategory).Methods("GET")
	router.HandleFunc("/product/{id}", productController.GetProductByID).Methods("GET")
	router.Handle("/product/{id}", roleGated(models.RoleSeller, productController.UpdateProduct)).Methods("PATCH")
	router.Handle("/product/{id}", roleGated(models.RoleSeller, productController.DeleteProduct)).Methods("DELETE")
	router.Handle("/seller/products/{email}", roleGated(models.RoleSeller, productController.GetSellerProducts)).Methods("GET")
	router.Handle("/admin/products", roleGated(models.RoleAdmin, productController.GetAllProducts)).Methods("GET")
	router.Handle("/descrement/quantity/{id}", gated(productController.AdjustQuantity)).Methods("PATCH")

	// Banner routes
	router.Handle("/banners", roleGated(models.RoleAdmin, bannerController.CreateBanner)).Methods("POST")
	router.HandleFunc("/banners", bannerController.GetBanners).Methods("GET")
	router.Handle("/banner/{id}", roleGated(models.RoleAdmin, bannerController.DeleteBanner)).Methods("DELETE")

	// Order routes
	router.Handle("/orders", gated(orderController.CreateOrder)).Methods("POST")
	router.Handle("/orders/{email}", gated(orderController.GetOrders)).Methods("GET")
	router.Handle("/seller/orders/{email}", roleGated(models.RoleSeller, orderController.GetSellerOrders)).Methods("GET")
	router.Handle("/order/{id}", gated(orderController.UpdateOrder)).Methods("PATCH")
	router.Handle("/order/{id}", gated(orderController.DeleteOrder)).Methods("DELETE")
	router.Handle("/orderlist", gated(orderController.CreateOrderListEntry)).Methods("POST")
	router.Handle("/orderlist/{email}", gated(orderController.GetOrderList)).Methods("GET")

	// Payment routes
	router.Handle("/create-payment-intent", gated(paymentController.CreatePaymentIntent)).Methods("POST")
	router.Handle("/payments", gated(paymentController.RecordPayment)).Methods("POST")
	router.Handle("/payments/{email}", gated(paymentController.GetPayments)).Methods("GET")

	// Chart routes
	router.Handle("/admin/chart", roleGated(models.RoleAdmin, chartController.AdminChart)).Methods("GET")
	router.Handle("/seller/chart/{email}", roleGated(models.RoleSeller, chartController.SellerChart)).Methods("GET")
}
