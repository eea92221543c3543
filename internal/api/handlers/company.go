package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Moshe1988/CouponManagementSystem/internal/api/middleware"
	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/service"
)

type CompanyHandler struct {
	companyService *service.CompanyService
}

func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func companyID(r *http.Request) (uint, bool) {
	capability, ok := middleware.GetCapability(r.Context())
	if !ok || capability.Role != domain.RoleCompany {
		return 0, false
	}
	return capability.CompanyID, true
}

func (h *CompanyHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := companyID(r)
	if !ok {
		forbidden(w)
		return
	}
	company, err := h.companyService.GetCurrent(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := companyID(r)
	if !ok {
		forbidden(w)
		return
	}
	var company domain.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.companyService.UpdateCurrent(r.Context(), id, &company); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := companyID(r)
	if !ok {
		forbidden(w)
		return
	}
	var coupon domain.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.companyService.CreateCoupon(r.Context(), id, &coupon); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, coupon)
}

func (h *CompanyHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := companyID(r)
	if !ok {
		forbidden(w)
		return
	}
	var coupon domain.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.companyService.UpdateCoupon(r.Context(), id, &coupon); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *CompanyHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	id, ok := companyID(r)
	if !ok {
		forbidden(w)
		return
	}
	coupons, err := h.companyService.ListCoupons(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

func (h *CompanyHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := companyID(r)
	if !ok {
		forbidden(w)
		return
	}
	couponID, ok := pathID(r, "couponId")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	coupon, err := h.companyService.GetCoupon(r.Context(), id, couponID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *CompanyHandler) ListAllCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.companyService.ListAllCoupons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}
