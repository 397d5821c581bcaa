package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-ecommerce-console/middleware"
	"go-ecommerce-console/models"
	"go-ecommerce-console/shop"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDomainError maps the shop's error taxonomy onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrCapacityExceeded):
		status = http.StatusConflict
	case errors.Is(err, models.ErrPaymentFailed):
		status = http.StatusPaymentRequired
	}
	http.Error(w, err.Error(), status)
}

// sessionFrom resolves the caller's session from the token claims.
func sessionFrom(w http.ResponseWriter, r *http.Request, sessions *shop.Sessions) (*shop.Session, bool) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok || claims.SessionID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	sess, ok := sessions.Get(claims.SessionID)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}
