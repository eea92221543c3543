package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
)

// CompanyBuilder creates test companies with a builder pattern
type CompanyBuilder struct {
	name     string
	email    string
	password string
}

// NewCompanyBuilder creates a new CompanyBuilder with default values
func NewCompanyBuilder() *CompanyBuilder {
	suffix := uuid.New().String()[:8]
	return &CompanyBuilder{
		name:     fmt.Sprintf("testco_%s", suffix),
		email:    fmt.Sprintf("co_%s@test.com", suffix),
		password: "testpassword123",
	}
}

func (b *CompanyBuilder) WithName(name string) *CompanyBuilder {
	b.name = name
	return b
}

func (b *CompanyBuilder) WithEmail(email string) *CompanyBuilder {
	b.email = email
	return b
}

func (b *CompanyBuilder) WithPassword(password string) *CompanyBuilder {
	b.password = password
	return b
}

// Build creates the company in the database
func (b *CompanyBuilder) Build(t *testing.T, db *gorm.DB) *domain.Company {
	t.Helper()

	company := &domain.Company{
		Name:     b.name,
		Email:    b.email,
		Password: b.password,
	}

	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create company: %v", err)
	}

	return company
}

// CustomerBuilder creates test customers with a builder pattern
type CustomerBuilder struct {
	firstName string
	lastName  string
	email     string
	password  string
}

// NewCustomerBuilder creates a new CustomerBuilder with default values
func NewCustomerBuilder() *CustomerBuilder {
	suffix := uuid.New().String()[:8]
	return &CustomerBuilder{
		firstName: "Test",
		lastName:  fmt.Sprintf("Customer_%s", suffix),
		email:     fmt.Sprintf("cust_%s@test.com", suffix),
		password:  "testpassword123",
	}
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.email = email
	return b
}

func (b *CustomerBuilder) WithPassword(password string) *CustomerBuilder {
	b.password = password
	return b
}

// Build creates the customer in the database
func (b *CustomerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Customer {
	t.Helper()

	customer := &domain.Customer{
		FirstName: b.firstName,
		LastName:  b.lastName,
		Email:     b.email,
		Password:  b.password,
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}

	return customer
}

// CouponBuilder creates test coupons with a builder pattern
type CouponBuilder struct {
	companyID uint
	title     string
	endDate   time.Time
	price     float64
	amount    int
}

// NewCouponBuilder creates a new CouponBuilder with default values
func NewCouponBuilder(companyID uint) *CouponBuilder {
	return &CouponBuilder{
		companyID: companyID,
		title:     fmt.Sprintf("coupon_%s", uuid.New().String()[:8]),
		endDate:   time.Now().AddDate(0, 1, 0),
		price:     9.99,
		amount:    10,
	}
}

func (b *CouponBuilder) WithTitle(title string) *CouponBuilder {
	b.title = title
	return b
}

func (b *CouponBuilder) WithEndDate(endDate time.Time) *CouponBuilder {
	b.endDate = endDate
	return b
}

func (b *CouponBuilder) WithAmount(amount int) *CouponBuilder {
	b.amount = amount
	return b
}

// Build creates the coupon in the database
func (b *CouponBuilder) Build(t *testing.T, db *gorm.DB) *domain.Coupon {
	t.Helper()

	coupon := &domain.Coupon{
		CompanyID: b.companyID,
		Title:     b.title,
		StartDate: time.Now().AddDate(0, 0, -1),
		EndDate:   b.endDate,
		Price:     b.price,
		Amount:    b.amount,
	}

	if err := db.Create(coupon).Error; err != nil {
		t.Fatalf("failed to create coupon: %v", err)
	}

	return coupon
}
