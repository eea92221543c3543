// Package respond writes the JSON bodies shared by handlers and middleware.
// Every failed request carries the same shape: a stable machine-readable
// kind plus a human-readable message. Storage errors never leak through
// either field.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
)

type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, err error) {
	status, kind := classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	JSON(w, status, ErrorResponse{Kind: kind, Message: message})
}

// Forbidden rejects a request whose session is valid but whose role does not
// cover the route.
func Forbidden(w http.ResponseWriter) {
	JSON(w, http.StatusForbidden, ErrorResponse{Kind: "FORBIDDEN", Message: "forbidden"})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, "SESSION_EXPIRED"
	case errors.Is(err, domain.ErrCompanyNotFound):
		return http.StatusNotFound, "COMPANY_NOT_FOUND"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, "CUSTOMER_NOT_FOUND"
	case errors.Is(err, domain.ErrCouponNotFound):
		return http.StatusNotFound, "COUPON_NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidUser), errors.Is(err, domain.ErrInvalidCoupon):
		return http.StatusBadRequest, "INVALID_ENTITY"
	case errors.Is(err, domain.ErrEmailExists), errors.Is(err, domain.ErrTitleExists):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrIllegalChange):
		return http.StatusForbidden, "ILLEGAL_CHANGE"
	case errors.Is(err, domain.ErrOutOfStock):
		return http.StatusConflict, "OUT_OF_STOCK"
	case errors.Is(err, domain.ErrAlreadyPurchased):
		return http.StatusConflict, "ALREADY_PURCHASED"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
