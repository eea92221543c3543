package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/repository"
)

// Existence checks shared by the role services. Each maps the store's
// not-found error to the matching domain error so callers never see a
// storage error for a missing record.

func companyByID(ctx context.Context, repo repository.CompanyRepository, id uint) (*domain.Company, error) {
	company, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func customerByID(ctx context.Context, repo repository.CustomerRepository, id uint) (*domain.Customer, error) {
	customer, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func couponByID(ctx context.Context, repo repository.CouponRepository, id uint) (*domain.Coupon, error) {
	coupon, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, err
	}
	return coupon, nil
}

// companyEmailTaken reports whether another company already uses email.
func companyEmailTaken(ctx context.Context, repo repository.CompanyRepository, email string) (bool, error) {
	_, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func customerEmailTaken(ctx context.Context, repo repository.CustomerRepository, email string) (bool, error) {
	_, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func couponTitleTaken(ctx context.Context, repo repository.CouponRepository, title string) (bool, error) {
	_, err := repo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Required-field checks. A zero end date counts as unset.

func validateCompany(company *domain.Company) error {
	if company.Email == "" || company.Password == "" {
		return domain.ErrInvalidUser
	}
	return nil
}

func validateCustomer(customer *domain.Customer) error {
	if customer.Email == "" || customer.Password == "" {
		return domain.ErrInvalidUser
	}
	return nil
}

func validateCoupon(coupon *domain.Coupon) error {
	if coupon.Title == "" || coupon.EndDate.IsZero() {
		return domain.ErrInvalidCoupon
	}
	return nil
}
