package service

import (
	"context"
	"fmt"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/repository"
)

// CompanyService carries a company capability's operations. Every method
// takes the capability's company id and enforces that the company only ever
// touches its own record and its own coupons.
type CompanyService struct {
	companyRepo repository.CompanyRepository
	couponRepo  repository.CouponRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository, couponRepo repository.CouponRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		couponRepo:  couponRepo,
	}
}

func (s *CompanyService) GetCurrent(ctx context.Context, companyID uint) (*domain.Company, error) {
	return companyByID(ctx, s.companyRepo, companyID)
}

// UpdateCurrent updates the company's own record. The submitted id must be
// the company's own, and the email may not change.
func (s *CompanyService) UpdateCurrent(ctx context.Context, companyID uint, company *domain.Company) error {
	if err := validateCompany(company); err != nil {
		return err
	}
	original, err := companyByID(ctx, s.companyRepo, companyID)
	if err != nil {
		return err
	}
	if original.ID != company.ID {
		return fmt.Errorf("id of the company does not match the one currently logged in: %w", domain.ErrIllegalChange)
	}
	if original.Email != company.Email {
		return fmt.Errorf("unable to change the email from %q to %q, changing email address is not allowed: %w",
			original.Email, company.Email, domain.ErrIllegalChange)
	}
	return s.companyRepo.Update(ctx, company)
}

func (s *CompanyService) CreateCoupon(ctx context.Context, companyID uint, coupon *domain.Coupon) error {
	if err := validateCoupon(coupon); err != nil {
		return err
	}
	taken, err := couponTitleTaken(ctx, s.couponRepo, coupon.Title)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("unable to create coupon %q: %w", coupon.Title, domain.ErrTitleExists)
	}
	coupon.ID = 0
	coupon.CompanyID = companyID
	return s.couponRepo.Create(ctx, coupon)
}

// UpdateCoupon updates one of the company's own coupons. A coupon owned by
// another company is rejected before any field is persisted, and the title
// may not change.
func (s *CompanyService) UpdateCoupon(ctx context.Context, companyID uint, coupon *domain.Coupon) error {
	if _, err := companyByID(ctx, s.companyRepo, companyID); err != nil {
		return err
	}
	original, err := couponByID(ctx, s.couponRepo, coupon.ID)
	if err != nil {
		return err
	}
	if err := validateCoupon(coupon); err != nil {
		return err
	}
	if err := requireOwnership(original, companyID); err != nil {
		return err
	}
	if original.Title != coupon.Title {
		return fmt.Errorf("unable to update title from %q to %q, changing the title is not allowed: %w",
			original.Title, coupon.Title, domain.ErrIllegalChange)
	}
	coupon.CompanyID = companyID
	return s.couponRepo.Update(ctx, coupon)
}

func (s *CompanyService) ListCoupons(ctx context.Context, companyID uint) ([]*domain.Coupon, error) {
	return s.couponRepo.GetByCompanyID(ctx, companyID)
}

// GetCoupon fetches a coupon through the company's capability; a coupon
// belonging to another company is treated as an illegal access.
func (s *CompanyService) GetCoupon(ctx context.Context, companyID, couponID uint) (*domain.Coupon, error) {
	coupon, err := couponByID(ctx, s.couponRepo, couponID)
	if err != nil {
		return nil, err
	}
	if err := requireOwnership(coupon, companyID); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CompanyService) ListAllCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	return s.couponRepo.GetAll(ctx)
}

func requireOwnership(coupon *domain.Coupon, companyID uint) error {
	if coupon.CompanyID != companyID {
		return fmt.Errorf("coupon belongs to another company: %w", domain.ErrIllegalChange)
	}
	return nil
}
