package controllers

import (
	"net/http"

	"go-ecommerce-console/shop"

	"github.com/gorilla/mux"
)

// ProductController serves the read-only catalog
type ProductController struct {
	Catalog *shop.Catalog
}

// NewProductController creates a new ProductController
func NewProductController(catalog *shop.Catalog) *ProductController {
	return &ProductController{Catalog: catalog}
}

// GetProducts retrieves all products
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pc.Catalog.All())
}

// GetProductByID retrieves a single product by ID, ignoring case
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	item, err := pc.Catalog.Lookup(mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
