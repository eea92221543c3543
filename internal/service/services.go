package service

import (
	"github.com/Moshe1988/CouponManagementSystem/internal/config"
	"github.com/Moshe1988/CouponManagementSystem/internal/repository"
	"github.com/Moshe1988/CouponManagementSystem/internal/session"
)

type Services struct {
	Auth     *AuthService
	Admin    *AdminService
	Company  *CompanyService
	Customer *CustomerService
}

func NewServices(repos *repository.Repositories, registry *session.Registry, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Company, repos.Customer, registry, cfg),
		Admin:    NewAdminService(repos.Company, repos.Customer, repos.Coupon),
		Company:  NewCompanyService(repos.Company, repos.Coupon),
		Customer: NewCustomerService(repos.Customer, repos.Coupon),
	}
}
