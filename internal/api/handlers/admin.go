package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/service"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ----- Customers -----

func (h *AdminHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.adminService.CreateCustomer(r.Context(), &customer); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *AdminHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.adminService.UpdateCustomer(r.Context(), &customer); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *AdminHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if err := h.adminService.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.adminService.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *AdminHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	customer, err := h.adminService.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *AdminHandler) ListCustomerCoupons(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	coupons, err := h.adminService.ListCustomerCoupons(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

// ----- Companies -----

func (h *AdminHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var company domain.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.adminService.CreateCompany(r.Context(), &company); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, company)
}

func (h *AdminHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var company domain.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.adminService.UpdateCompany(r.Context(), &company); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *AdminHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if err := h.adminService.DeleteCompany(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.adminService.ListCompanies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

func (h *AdminHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	company, err := h.adminService.GetCompany(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *AdminHandler) ListCompanyCoupons(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	coupons, err := h.adminService.ListCompanyCoupons(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

// ----- Coupons -----

func (h *AdminHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	var coupon domain.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.adminService.CreateCoupon(r.Context(), companyID, &coupon); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, coupon)
}

func (h *AdminHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	var coupon domain.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := h.adminService.UpdateCoupon(r.Context(), companyID, &coupon); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *AdminHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if err := h.adminService.DeleteCoupon(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.adminService.ListCoupons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

func (h *AdminHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	coupon, err := h.adminService.GetCoupon(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *AdminHandler) GetCouponCompanyID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	companyID, err := h.adminService.CompanyIDForCoupon(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint{"companyId": companyID})
}
