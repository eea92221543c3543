package service

import (
	"context"
	"fmt"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/repository"
)

// CustomerService carries a customer capability's operations: the
// customer's own record, read access to all coupons, and purchase.
type CustomerService struct {
	customerRepo repository.CustomerRepository
	couponRepo   repository.CouponRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, couponRepo repository.CouponRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		couponRepo:   couponRepo,
	}
}

func (s *CustomerService) GetCurrent(ctx context.Context, customerID uint) (*domain.Customer, error) {
	return customerByID(ctx, s.customerRepo, customerID)
}

// UpdateCurrent updates the customer's own record. The submitted id must be
// the customer's own, and the email may not change.
func (s *CustomerService) UpdateCurrent(ctx context.Context, customerID uint, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	original, err := customerByID(ctx, s.customerRepo, customerID)
	if err != nil {
		return err
	}
	if original.ID != customer.ID {
		return fmt.Errorf("id of the customer does not match the one currently logged in: %w", domain.ErrIllegalChange)
	}
	if original.Email != customer.Email {
		return fmt.Errorf("unable to change the email from %q to %q, changing email address is not allowed: %w",
			original.Email, customer.Email, domain.ErrIllegalChange)
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *CustomerService) ListPurchased(ctx context.Context, customerID uint) ([]*domain.Coupon, error) {
	return s.couponRepo.GetByCustomerID(ctx, customerID)
}

// Purchase buys one unit of a coupon for the customer. Preconditions run in
// order: the coupon must exist, it must have stock left, and the customer
// must not hold it already. The decrement and the purchased edge are
// persisted as one unit.
func (s *CustomerService) Purchase(ctx context.Context, customerID, couponID uint) (*domain.Coupon, error) {
	coupon, err := couponByID(ctx, s.couponRepo, couponID)
	if err != nil {
		return nil, err
	}
	if coupon.Amount <= 0 {
		return nil, fmt.Errorf("unable to purchase coupon %q: %w", coupon.Title, domain.ErrOutOfStock)
	}

	purchased, err := s.couponRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for _, held := range purchased {
		if held.ID == couponID {
			return nil, fmt.Errorf("unable to purchase coupon %q: %w", coupon.Title, domain.ErrAlreadyPurchased)
		}
	}

	return s.couponRepo.Purchase(ctx, customerID, couponID)
}

func (s *CustomerService) ListAllCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	return s.couponRepo.GetAll(ctx)
}

func (s *CustomerService) GetCoupon(ctx context.Context, couponID uint) (*domain.Coupon, error) {
	return couponByID(ctx, s.couponRepo, couponID)
}
