package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"go-ecommerce-console/middleware"
	"go-ecommerce-console/shop"
	"go-ecommerce-console/utils"
)

// SessionController issues shopper sessions and operator tokens
type SessionController struct {
	Sessions     *shop.Sessions
	TokenTTL     time.Duration
	OperatorUser string
	OperatorHash string
}

// NewSessionController creates a new SessionController
func NewSessionController(sessions *shop.Sessions, tokenTTL time.Duration, operatorUser, operatorHash string) *SessionController {
	return &SessionController{
		Sessions:     sessions,
		TokenTTL:     tokenTTL,
		OperatorUser: operatorUser,
		OperatorHash: operatorHash,
	}
}

// StartSession opens an empty cart and returns a token bound to it
func (sc *SessionController) StartSession(w http.ResponseWriter, r *http.Request) {
	sess := sc.Sessions.Start()
	token, err := utils.GenerateJWT(sess.ID, utils.RoleShopper, sc.TokenTTL)
	if err != nil {
		sc.Sessions.End(sess.ID)
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": sess.ID, "token": token})
}

// EndSession discards the caller's cart
func (sc *SessionController) EndSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok || claims.SessionID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	sc.Sessions.End(claims.SessionID)
	w.WriteHeader(http.StatusNoContent)
}

// Login handles operator authentication
func (sc *SessionController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if creds.Username != sc.OperatorUser || !utils.CheckPassword(sc.OperatorHash, creds.Password) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT("", utils.RoleOperator, sc.TokenTTL)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
