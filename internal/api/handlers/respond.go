package handlers

import (
	"net/http"

	"github.com/Moshe1988/CouponManagementSystem/internal/api/respond"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	respond.JSON(w, status, v)
}

func respondError(w http.ResponseWriter, err error) {
	respond.Error(w, err)
}

func badRequest(w http.ResponseWriter, message string) {
	respond.JSON(w, http.StatusBadRequest, respond.ErrorResponse{Kind: "BAD_REQUEST", Message: message})
}

func forbidden(w http.ResponseWriter) {
	respond.Forbidden(w)
}
