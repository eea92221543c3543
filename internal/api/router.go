package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Moshe1988/CouponManagementSystem/internal/api/handlers"
	"github.com/Moshe1988/CouponManagementSystem/internal/api/middleware"
	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	adminHandler := handlers.NewAdminHandler(services.Admin)
	companyHandler := handlers.NewCompanyHandler(services.Company)
	customerHandler := handlers.NewCustomerHandler(services.Customer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Delete("/logout", authHandler.Logout)
			r.Get("/session", authHandler.LastAccessed)
		})

		// Admin surface
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Use(middleware.RequireRole(domain.RoleAdmin))

			r.Route("/admin", func(r chi.Router) {
				r.Route("/customers", func(r chi.Router) {
					r.Post("/", adminHandler.CreateCustomer)
					r.Put("/", adminHandler.UpdateCustomer)
					r.Get("/", adminHandler.ListCustomers)
					r.Get("/{id}", adminHandler.GetCustomer)
					r.Delete("/{id}", adminHandler.DeleteCustomer)
					r.Get("/{id}/coupons", adminHandler.ListCustomerCoupons)
				})
				r.Route("/companies", func(r chi.Router) {
					r.Post("/", adminHandler.CreateCompany)
					r.Put("/", adminHandler.UpdateCompany)
					r.Get("/", adminHandler.ListCompanies)
					r.Get("/{id}", adminHandler.GetCompany)
					r.Delete("/{id}", adminHandler.DeleteCompany)
					r.Get("/{id}/coupons", adminHandler.ListCompanyCoupons)
					r.Post("/{id}/coupons", adminHandler.CreateCoupon)
					r.Put("/{id}/coupons", adminHandler.UpdateCoupon)
				})
				r.Route("/coupons", func(r chi.Router) {
					r.Get("/", adminHandler.ListCoupons)
					r.Get("/{id}", adminHandler.GetCoupon)
					r.Delete("/{id}", adminHandler.DeleteCoupon)
					r.Get("/{id}/company", adminHandler.GetCouponCompanyID)
				})
			})
		})

		// Company surface
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Use(middleware.RequireRole(domain.RoleCompany))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/me", companyHandler.Me)
				r.Put("/me", companyHandler.Update)
				r.Get("/coupons", companyHandler.ListCoupons)
				r.Post("/coupons", companyHandler.CreateCoupon)
				r.Put("/coupons", companyHandler.UpdateCoupon)
				r.Get("/coupons/all", companyHandler.ListAllCoupons)
				r.Get("/coupons/{couponId}", companyHandler.GetCoupon)
			})
		})

		// Customer surface
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Use(middleware.RequireRole(domain.RoleCustomer))

			r.Route("/customers", func(r chi.Router) {
				r.Get("/me", customerHandler.Me)
				r.Put("/me", customerHandler.Update)
				r.Get("/purchased", customerHandler.ListPurchased)
				r.Post("/purchase/{couponId}", customerHandler.Purchase)
				r.Get("/coupons", customerHandler.ListAllCoupons)
				r.Get("/coupons/{couponId}", customerHandler.GetCoupon)
			})
		})
	})

	return r
}
