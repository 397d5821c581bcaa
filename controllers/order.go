// controllers/order.go
package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"go-ecommerce-console/models"
	"go-ecommerce-console/shop"

	"github.com/gorilla/mux"
)

// OrderController handles checkout and order history requests
type OrderController struct {
	Sessions *shop.Sessions
	Checkout *shop.Checkout
	Ledger   *shop.Ledger
	Logger   *slog.Logger
}

// NewOrderController creates a new OrderController
func NewOrderController(sessions *shop.Sessions, checkout *shop.Checkout, ledger *shop.Ledger, logger *slog.Logger) *OrderController {
	return &OrderController{
		Sessions: sessions,
		Checkout: checkout,
		Ledger:   ledger,
		Logger:   logger,
	}
}

// CreateOrder checks out the session's cart and clears it on success
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(w, r, oc.Sessions)
	if !ok {
		return
	}

	// Expecting JSON body with "payment_method": "cash", "card" or "gcash"
	var paymentRequest struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&paymentRequest); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	method, err := models.ParsePaymentMethod(paymentRequest.PaymentMethod)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var order models.Order
	err = sess.WithCart(func(cart *models.Cart) error {
		if cart.IsEmpty() {
			return &models.InputError{Reason: "cart is empty"}
		}
		placed, err := oc.Checkout.Checkout(r.Context(), cart, method)
		if err != nil {
			return err
		}
		cart.Clear()
		order = placed
		return nil
	})
	if err != nil {
		oc.Logger.Info("checkout rejected", "session_id", sess.ID, "error", err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetOrders lists every order recorded by this process (operator only)
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, oc.Ledger.All())
}

// GetOrderByID returns a single order (operator only)
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}
	order, ok := oc.Ledger.Find(id)
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
