package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/repository/postgres"
	"github.com/Moshe1988/CouponManagementSystem/internal/service"
	"github.com/Moshe1988/CouponManagementSystem/internal/session"
	"github.com/Moshe1988/CouponManagementSystem/internal/testutil"
)

func TestCompanyService_UpdateCurrent(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	companyService := service.NewCompanyService(repos.Company, repos.Coupon)
	ctx := context.Background()

	company := testutil.NewCompanyBuilder().WithEmail("self@x.com").Build(t, testDB.DB)
	other := testutil.NewCompanyBuilder().Build(t, testDB.DB)

	t.Run("own id and email unchanged", func(t *testing.T) {
		update := *company
		update.Name = "New Name"
		require.NoError(t, companyService.UpdateCurrent(ctx, company.ID, &update))
	})

	t.Run("submitting another company's id", func(t *testing.T) {
		update := *other
		err := companyService.UpdateCurrent(ctx, company.ID, &update)
		assert.ErrorIs(t, err, domain.ErrIllegalChange)
	})

	t.Run("changing the email", func(t *testing.T) {
		update := *company
		update.Email = "changed@x.com"
		err := companyService.UpdateCurrent(ctx, company.ID, &update)
		assert.ErrorIs(t, err, domain.ErrIllegalChange)
	})

	t.Run("missing required fields", func(t *testing.T) {
		update := *company
		update.Password = ""
		err := companyService.UpdateCurrent(ctx, company.ID, &update)
		assert.ErrorIs(t, err, domain.ErrInvalidUser)
	})
}

// A company logs in, creates a coupon, and a second company's session can
// neither update nor read it.
func TestCompanyService_CouponOwnership(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	registry := session.NewRegistry()
	authService := service.NewAuthService(repos.Company, repos.Customer, registry, cfg)
	companyService := service.NewCompanyService(repos.Company, repos.Coupon)
	ctx := context.Background()

	testutil.NewCompanyBuilder().WithEmail("a@x.com").WithPassword("pw").Build(t, testDB.DB)
	testutil.NewCompanyBuilder().WithEmail("b@x.com").WithPassword("pw").Build(t, testDB.DB)

	tokenA, err := authService.Login(ctx, service.LoginInput{Role: domain.RoleCompany, Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	capA, err := authService.Resolve(tokenA)
	require.NoError(t, err)

	coupon := domain.Coupon{Title: "SUMMER10", EndDate: time.Now().AddDate(0, 1, 0), Amount: 3}
	require.NoError(t, companyService.CreateCoupon(ctx, capA.CompanyID, &coupon))

	tokenB, err := authService.Login(ctx, service.LoginInput{Role: domain.RoleCompany, Email: "b@x.com", Password: "pw"})
	require.NoError(t, err)
	capB, err := authService.Resolve(tokenB)
	require.NoError(t, err)

	// Company B cannot update A's coupon.
	update := coupon
	update.Amount = 100
	err = companyService.UpdateCoupon(ctx, capB.CompanyID, &update)
	assert.ErrorIs(t, err, domain.ErrIllegalChange)

	// Nor read it through its own capability.
	_, err = companyService.GetCoupon(ctx, capB.CompanyID, coupon.ID)
	assert.ErrorIs(t, err, domain.ErrIllegalChange)

	// The owner still can.
	got, err := companyService.GetCoupon(ctx, capA.CompanyID, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Amount)
}

func TestCompanyService_CreateCoupon_TitleUnique(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	companyService := service.NewCompanyService(repos.Company, repos.Coupon)
	ctx := context.Background()

	companyA := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	companyB := testutil.NewCompanyBuilder().Build(t, testDB.DB)

	coupon := domain.Coupon{Title: "UNIQUE", EndDate: time.Now().AddDate(0, 1, 0)}
	require.NoError(t, companyService.CreateCoupon(ctx, companyA.ID, &coupon))

	// Titles are unique across the whole system, not per company.
	dup := domain.Coupon{Title: "UNIQUE", EndDate: time.Now().AddDate(0, 1, 0)}
	assert.ErrorIs(t, companyService.CreateCoupon(ctx, companyB.ID, &dup), domain.ErrTitleExists)
}

func TestCompanyService_UpdateCoupon_TitleImmutable(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	companyService := service.NewCompanyService(repos.Company, repos.Coupon)
	ctx := context.Background()

	company := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	coupon := testutil.NewCouponBuilder(company.ID).WithTitle("FIXED").Build(t, testDB.DB)

	update := *coupon
	update.Title = "DIFFERENT"
	err := companyService.UpdateCoupon(ctx, company.ID, &update)
	assert.ErrorIs(t, err, domain.ErrIllegalChange)

	update = *coupon
	update.Price = 1.5
	require.NoError(t, companyService.UpdateCoupon(ctx, company.ID, &update))
}

func TestCompanyService_ListCoupons(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	companyService := service.NewCompanyService(repos.Company, repos.Coupon)
	ctx := context.Background()

	companyA := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	companyB := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	testutil.NewCouponBuilder(companyA.ID).Build(t, testDB.DB)
	testutil.NewCouponBuilder(companyA.ID).Build(t, testDB.DB)
	testutil.NewCouponBuilder(companyB.ID).Build(t, testDB.DB)

	mine, err := companyService.ListCoupons(ctx, companyA.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := companyService.ListAllCoupons(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
