package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Moshe1988/CouponManagementSystem/internal/config"
	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/repository"
	"github.com/Moshe1988/CouponManagementSystem/internal/session"
)

// AuthService validates credentials, issues session tokens and is the only
// path from a token back to a capability.
type AuthService struct {
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	registry     *session.Registry
	cfg          *config.Config
}

func NewAuthService(companyRepo repository.CompanyRepository, customerRepo repository.CustomerRepository, registry *session.Registry, cfg *config.Config) *AuthService {
	return &AuthService{
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		registry:     registry,
		cfg:          cfg,
	}
}

type LoginInput struct {
	Role     domain.Role
	Email    string
	Password string
}

// Login authenticates the credentials for the requested role and returns a
// fresh session token. Every failure path collapses to ErrInvalidCredentials
// so a caller cannot probe which part was wrong.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	switch input.Role {
	case domain.RoleAdmin:
		return s.adminLogin(input)
	case domain.RoleCompany:
		return s.companyLogin(ctx, input)
	case domain.RoleCustomer:
		return s.customerLogin(ctx, input)
	default:
		return "", domain.ErrInvalidCredentials
	}
}

func (s *AuthService) adminLogin(input LoginInput) (string, error) {
	if input.Email != s.cfg.AdminEmail || input.Password != s.cfg.AdminPassword {
		return "", domain.ErrInvalidCredentials
	}
	return s.registry.Issue(domain.AdminCapability()), nil
}

func (s *AuthService) companyLogin(ctx context.Context, input LoginInput) (string, error) {
	company, err := s.companyRepo.GetByEmailAndPassword(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	return s.registry.Issue(domain.CompanyCapability(company.ID)), nil
}

func (s *AuthService) customerLogin(ctx context.Context, input LoginInput) (string, error) {
	customer, err := s.customerRepo.GetByEmailAndPassword(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	return s.registry.Issue(domain.CustomerCapability(customer.ID)), nil
}

// Resolve maps a token to its capability, refreshing the session's idle
// clock. Protected handlers must go through here before any rule check.
func (s *AuthService) Resolve(token string) (domain.Capability, error) {
	return s.registry.Resolve(token)
}

// LastAccessed reports (and refreshes) the session's last-touch timestamp.
func (s *AuthService) LastAccessed(token string) (time.Time, error) {
	return s.registry.LastAccessed(token)
}

// Logout revokes the token. Revoking an unknown token is a no-op.
func (s *AuthService) Logout(token string) {
	s.registry.Revoke(token)
}
