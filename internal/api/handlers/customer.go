package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Moshe1988/CouponManagementSystem/internal/api/middleware"
	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/service"
)

type CustomerHandler struct {
	customerService *service.CustomerService
}

func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func customerID(r *http.Request) (uint, bool) {
	capability, ok := middleware.GetCapability(r.Context())
	if !ok || capability.Role != domain.RoleCustomer {
		return 0, false
	}
	return capability.CustomerID, true
}

func (h *CustomerHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(r)
	if !ok {
		forbidden(w)
		return
	}
	customer, err := h.customerService.GetCurrent(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(r)
	if !ok {
		forbidden(w)
		return
	}
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.customerService.UpdateCurrent(r.Context(), id, &customer); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) ListPurchased(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(r)
	if !ok {
		forbidden(w)
		return
	}
	coupons, err := h.customerService.ListPurchased(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

func (h *CustomerHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(r)
	if !ok {
		forbidden(w)
		return
	}
	couponID, ok := pathID(r, "couponId")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	coupon, err := h.customerService.Purchase(r.Context(), id, couponID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *CustomerHandler) ListAllCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.customerService.ListAllCoupons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

func (h *CustomerHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	couponID, ok := pathID(r, "couponId")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	coupon, err := h.customerService.GetCoupon(r.Context(), couponID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}
