package service

import (
	"context"
	"fmt"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/repository"
)

// AdminService carries the admin capability's operations: unrestricted
// read/write over companies, customers and coupons, gated by the same
// business rules every other principal is held to.
type AdminService struct {
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	couponRepo   repository.CouponRepository
}

func NewAdminService(companyRepo repository.CompanyRepository, customerRepo repository.CustomerRepository, couponRepo repository.CouponRepository) *AdminService {
	return &AdminService{
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		couponRepo:   couponRepo,
	}
}

// ----- Customers -----

func (s *AdminService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	taken, err := customerEmailTaken(ctx, s.customerRepo, customer.Email)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("unable to create customer %q: %w", customer.Email, domain.ErrEmailExists)
	}
	customer.ID = 0
	return s.customerRepo.Create(ctx, customer)
}

func (s *AdminService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	original, err := customerByID(ctx, s.customerRepo, customer.ID)
	if err != nil {
		return err
	}
	if original.Email != customer.Email {
		return fmt.Errorf("unable to change the email from %q to %q, changing email address is not allowed: %w",
			original.Email, customer.Email, domain.ErrIllegalChange)
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *AdminService) DeleteCustomer(ctx context.Context, id uint) error {
	if _, err := customerByID(ctx, s.customerRepo, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}

func (s *AdminService) GetCustomer(ctx context.Context, id uint) (*domain.Customer, error) {
	return customerByID(ctx, s.customerRepo, id)
}

func (s *AdminService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customerRepo.GetAll(ctx)
}

func (s *AdminService) ListCustomerCoupons(ctx context.Context, customerID uint) ([]*domain.Coupon, error) {
	if _, err := customerByID(ctx, s.customerRepo, customerID); err != nil {
		return nil, err
	}
	return s.couponRepo.GetByCustomerID(ctx, customerID)
}

// ----- Companies -----

func (s *AdminService) CreateCompany(ctx context.Context, company *domain.Company) error {
	if err := validateCompany(company); err != nil {
		return err
	}
	taken, err := companyEmailTaken(ctx, s.companyRepo, company.Email)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("unable to create company %q: %w", company.Email, domain.ErrEmailExists)
	}
	company.ID = 0
	return s.companyRepo.Create(ctx, company)
}

func (s *AdminService) UpdateCompany(ctx context.Context, company *domain.Company) error {
	if err := validateCompany(company); err != nil {
		return err
	}
	original, err := companyByID(ctx, s.companyRepo, company.ID)
	if err != nil {
		return err
	}
	if original.Email != company.Email {
		return fmt.Errorf("unable to change the email from %q to %q, changing email address is not allowed: %w",
			original.Email, company.Email, domain.ErrIllegalChange)
	}
	return s.companyRepo.Update(ctx, company)
}

func (s *AdminService) DeleteCompany(ctx context.Context, id uint) error {
	if _, err := companyByID(ctx, s.companyRepo, id); err != nil {
		return err
	}
	return s.companyRepo.Delete(ctx, id)
}

func (s *AdminService) GetCompany(ctx context.Context, id uint) (*domain.Company, error) {
	return companyByID(ctx, s.companyRepo, id)
}

func (s *AdminService) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	return s.companyRepo.GetAll(ctx)
}

func (s *AdminService) ListCompanyCoupons(ctx context.Context, companyID uint) ([]*domain.Coupon, error) {
	if _, err := companyByID(ctx, s.companyRepo, companyID); err != nil {
		return nil, err
	}
	return s.couponRepo.GetByCompanyID(ctx, companyID)
}

// ----- Coupons -----

func (s *AdminService) CreateCoupon(ctx context.Context, companyID uint, coupon *domain.Coupon) error {
	if err := validateCoupon(coupon); err != nil {
		return err
	}
	if _, err := companyByID(ctx, s.companyRepo, companyID); err != nil {
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

// UpdateCoupon updates a coupon on behalf of the admin. The submitted
// company id must match the coupon's current owner, and the title may not
// change.
func (s *AdminService) UpdateCoupon(ctx context.Context, companyID uint, coupon *domain.Coupon) error {
	if err := validateCoupon(coupon); err != nil {
		return err
	}
	original, err := couponByID(ctx, s.couponRepo, coupon.ID)
	if err != nil {
		return err
	}
	if _, err := companyByID(ctx, s.companyRepo, companyID); err != nil {
		return err
	}
	if original.CompanyID != companyID {
		return fmt.Errorf("unable to update coupon, coupon not associated with the company given: %w",
			domain.ErrIllegalChange)
	}
	if original.Title != coupon.Title {
		return fmt.Errorf("unable to update title from %q to %q, changing the title is not allowed: %w",
			original.Title, coupon.Title, domain.ErrIllegalChange)
	}
	coupon.CompanyID = companyID
	return s.couponRepo.Update(ctx, coupon)
}

func (s *AdminService) DeleteCoupon(ctx context.Context, id uint) error {
	if _, err := couponByID(ctx, s.couponRepo, id); err != nil {
		return err
	}
	return s.couponRepo.Delete(ctx, id)
}

func (s *AdminService) GetCoupon(ctx context.Context, id uint) (*domain.Coupon, error) {
	return couponByID(ctx, s.couponRepo, id)
}

func (s *AdminService) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	return s.couponRepo.GetAll(ctx)
}

// CompanyIDForCoupon resolves the owning company of a coupon.
func (s *AdminService) CompanyIDForCoupon(ctx context.Context, couponID uint) (uint, error) {
	coupon, err := couponByID(ctx, s.couponRepo, couponID)
	if err != nil {
		return 0, err
	}
	if _, err := companyByID(ctx, s.companyRepo, coupon.CompanyID); err != nil {
		return 0, err
	}
	return coupon.CompanyID, nil
}
