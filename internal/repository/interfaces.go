package repository

import (
	"context"
	"time"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uint) (*domain.Company, error)
	GetByEmail(ctx context.Context, email string) (*domain.Company, error)
	GetByEmailAndPassword(ctx context.Context, email, password string) (*domain.Company, error)
	GetAll(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id uint) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uint) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByEmailAndPassword(ctx context.Context, email, password string) (*domain.Customer, error)
	GetAll(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uint) error
}

type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	GetByID(ctx context.Context, id uint) (*domain.Coupon, error)
	GetByTitle(ctx context.Context, title string) (*domain.Coupon, error)
	GetAll(ctx context.Context) ([]*domain.Coupon, error)
	GetByCompanyID(ctx context.Context, companyID uint) ([]*domain.Coupon, error)
	GetByCustomerID(ctx context.Context, customerID uint) ([]*domain.Coupon, error)
	GetExpiredBefore(ctx context.Context, t time.Time) ([]*domain.Coupon, error)
	Update(ctx context.Context, coupon *domain.Coupon) error
	Delete(ctx context.Context, id uint) error
	DeleteBatch(ctx context.Context, coupons []*domain.Coupon) error

	// Purchase records the customer-coupon edge and decrements the coupon
	// amount as one transactional unit, returning the coupon after the
	// decrement.
	Purchase(ctx context.Context, customerID, couponID uint) (*domain.Coupon, error)
}

type Repositories struct {
	Company  CompanyRepository
	Customer CustomerRepository
	Coupon   CouponRepository
}
