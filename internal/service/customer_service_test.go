package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/repository/postgres"
	"github.com/Moshe1988/CouponManagementSystem/internal/service"
	"github.com/Moshe1988/CouponManagementSystem/internal/testutil"
)

func TestCustomerService_Purchase(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	customerService := service.NewCustomerService(repos.Customer, repos.Coupon)
	ctx := context.Background()

	company := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	customer := testutil.NewCustomerBuilder().Build(t, testDB.DB)
	coupon := testutil.NewCouponBuilder(company.ID).WithAmount(2).Build(t, testDB.DB)

	purchased, err := customerService.Purchase(ctx, customer.ID, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, purchased.Amount)

	held, err := customerService.ListPurchased(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, coupon.ID, held[0].ID)
}

func TestCustomerService_Purchase_DuplicateRejected(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	customerService := service.NewCustomerService(repos.Customer, repos.Coupon)
	ctx := context.Background()

	company := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	customer := testutil.NewCustomerBuilder().Build(t, testDB.DB)
	coupon := testutil.NewCouponBuilder(company.ID).WithAmount(5).Build(t, testDB.DB)

	_, err := customerService.Purchase(ctx, customer.ID, coupon.ID)
	require.NoError(t, err)

	_, err = customerService.Purchase(ctx, customer.ID, coupon.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyPurchased)

	// The amount came down exactly once across both attempts.
	stored, err := repos.Coupon.GetByID(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Amount)
}

// The transaction itself re-checks the held edge under the row lock, so a
// second purchase that slipped past the service-level scan still fails and
// never decrements twice.
func TestCouponRepository_Purchase_DuplicateRejectedInTransaction(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	company := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	customer := testutil.NewCustomerBuilder().Build(t, testDB.DB)
	coupon := testutil.NewCouponBuilder(company.ID).WithAmount(3).Build(t, testDB.DB)

	_, err := repos.Coupon.Purchase(ctx, customer.ID, coupon.ID)
	require.NoError(t, err)

	_, err = repos.Coupon.Purchase(ctx, customer.ID, coupon.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyPurchased)

	stored, err := repos.Coupon.GetByID(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Amount)

	held, err := repos.Coupon.GetByCustomerID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, held, 1)
}

func TestCustomerService_Purchase_OutOfStock(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	customerService := service.NewCustomerService(repos.Customer, repos.Coupon)
	ctx := context.Background()

	company := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	customer := testutil.NewCustomerBuilder().Build(t, testDB.DB)
	coupon := testutil.NewCouponBuilder(company.ID).WithAmount(0).Build(t, testDB.DB)

	_, err := customerService.Purchase(ctx, customer.ID, coupon.ID)
	assert.ErrorIs(t, err, domain.ErrOutOfStock)

	stored, err := repos.Coupon.GetByID(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Amount)
}

func TestCustomerService_Purchase_UnknownCoupon(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	customerService := service.NewCustomerService(repos.Customer, repos.Coupon)

	customer := testutil.NewCustomerBuilder().Build(t, testDB.DB)

	_, err := customerService.Purchase(context.Background(), customer.ID, 9999)
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
}

// Concurrent purchases of the last unit: exactly one may win.
func TestCustomerService_Purchase_LastUnitRace(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	customerService := service.NewCustomerService(repos.Customer, repos.Coupon)
	ctx := context.Background()

	company := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	coupon := testutil.NewCouponBuilder(company.ID).WithAmount(1).Build(t, testDB.DB)

	const buyers = 4
	customers := make([]*domain.Customer, buyers)
	for i := range customers {
		customers[i] = testutil.NewCustomerBuilder().Build(t, testDB.DB)
	}

	var wg sync.WaitGroup
	errs := make([]error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = customerService.Purchase(ctx, customers[i].ID, coupon.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrOutOfStock)
		}
	}
	assert.Equal(t, 1, succeeded)

	stored, err := repos.Coupon.GetByID(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Amount)
}

func TestCustomerService_UpdateCurrent(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	customerService := service.NewCustomerService(repos.Customer, repos.Coupon)
	ctx := context.Background()

	customer := testutil.NewCustomerBuilder().WithEmail("me@x.com").Build(t, testDB.DB)
	other := testutil.NewCustomerBuilder().Build(t, testDB.DB)

	update := *customer
	update.FirstName = "Renamed"
	require.NoError(t, customerService.UpdateCurrent(ctx, customer.ID, &update))

	update = *other
	err := customerService.UpdateCurrent(ctx, customer.ID, &update)
	assert.ErrorIs(t, err, domain.ErrIllegalChange)

	update = *customer
	update.Email = "new@x.com"
	err = customerService.UpdateCurrent(ctx, customer.ID, &update)
	assert.ErrorIs(t, err, domain.ErrIllegalChange)
}
