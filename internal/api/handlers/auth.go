package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Moshe1988/CouponManagementSystem/internal/api/middleware"
	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type LastAccessedResponse struct {
	LastAccessed time.Time `json:"lastAccessed"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), service.LoginInput{
		Role:     domain.Role(req.Role),
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, Role: req.Role})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		respondError(w, domain.ErrSessionExpired)
		return
	}
	h.authService.Logout(token)
	w.WriteHeader(http.StatusNoContent)
}

// LastAccessed lets a client poll its own idle countdown; the poll itself
// refreshes the session.
func (h *AuthHandler) LastAccessed(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		respondError(w, domain.ErrSessionExpired)
		return
	}

	at, err := h.authService.LastAccessed(token)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LastAccessedResponse{LastAccessed: at})
}
