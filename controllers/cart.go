package controllers

import (
	"encoding/json"
	"net/http"

	"go-ecommerce-console/models"
	"go-ecommerce-console/shop"
)

// CartController handles cart-related requests
type CartController struct {
	Sessions *shop.Sessions
	Catalog  *shop.Catalog
}

// NewCartController creates a new CartController
func NewCartController(sessions *shop.Sessions, catalog *shop.Catalog) *CartController {
	return &CartController{Sessions: sessions, Catalog: catalog}
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddToCart appends a line to the session's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(w, r, cc.Sessions)
	if !ok {
		return
	}

	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	item, err := cc.Catalog.Lookup(req.ProductID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var body []byte
	err = sess.WithCart(func(cart *models.Cart) (err error) {
		if err = cart.AddLine(item, req.Quantity); err != nil {
			return err
		}
		body, err = json.Marshal(cart)
		return err
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(body)
}

// GetCart retrieves the session's cart
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(w, r, cc.Sessions)
	if !ok {
		return
	}

	var body []byte
	err := sess.WithCart(func(cart *models.Cart) (err error) {
		body, err = json.Marshal(cart)
		return err
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// ClearCart empties the session's cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(w, r, cc.Sessions)
	if !ok {
		return
	}
	_ = sess.WithCart(func(cart *models.Cart) error {
		cart.Clear()
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}
