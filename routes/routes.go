// routes/routes.go
package routes

import (
	"go-ecommerce-console/controllers"
	"go-ecommerce-console/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, sessionController *controllers.SessionController, productController *controllers.ProductController, cartController *controllers.CartController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/session", sessionController.StartSession).Methods("POST")
	router.HandleFunc("/login", sessionController.Login).Methods("POST")
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Shopper routes
	shopper := router.NewRoute().Subrouter()
	shopper.Use(middleware.AuthMiddleware)
	shopper.HandleFunc("/session", sessionController.EndSession).Methods("DELETE")
	shopper.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	shopper.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	shopper.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	shopper.HandleFunc("/order", orderController.CreateOrder).Methods("POST")

	// Operator routes
	operator := router.PathPrefix("/orders").Subrouter()
	operator.Use(middleware.AuthMiddleware)
	operator.Use(middleware.OperatorMiddleware)
	operator.HandleFunc("", orderController.GetOrders).Methods("GET")
	operator.HandleFunc("/{id:[0-9]+}", orderController.GetOrderByID).Methods("GET")
}
