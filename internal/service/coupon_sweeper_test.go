package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Moshe1988/CouponManagementSystem/internal/repository/postgres"
	"github.com/Moshe1988/CouponManagementSystem/internal/service"
	"github.com/Moshe1988/CouponManagementSystem/internal/testutil"
)

func TestCouponSweeper_PurgesExpiredCoupons(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	company := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	expired := testutil.NewCouponBuilder(company.ID).
		WithEndDate(time.Now().AddDate(0, 0, -1)).
		Build(t, testDB.DB)
	live := testutil.NewCouponBuilder(company.ID).
		WithEndDate(time.Now().AddDate(0, 1, 0)).
		Build(t, testDB.DB)

	sweeper := service.NewCouponSweeper(repos.Coupon, 50*time.Millisecond, zerolog.Nop())

	sweepCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go sweeper.Run(sweepCtx)

	// Wait out at least one full sweep cycle.
	require.Eventually(t, func() bool {
		_, err := repos.Coupon.GetByID(ctx, expired.ID)
		return errors.Is(err, gorm.ErrRecordNotFound)
	}, 3*time.Second, 50*time.Millisecond, "expired coupon should be purged")

	// The live coupon is untouched.
	stored, err := repos.Coupon.GetByID(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, live.ID, stored.ID)
}

func TestCouponSweeper_PurgesPurchasedExpiredCoupon(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	customerService := service.NewCustomerService(repos.Customer, repos.Coupon)
	ctx := context.Background()

	company := testutil.NewCompanyBuilder().Build(t, testDB.DB)
	customer := testutil.NewCustomerBuilder().Build(t, testDB.DB)

	// Purchase first, then expire: the purchased edge must not block the
	// batch delete.
	coupon := testutil.NewCouponBuilder(company.ID).
		WithEndDate(time.Now().Add(time.Hour)).
		WithAmount(3).
		Build(t, testDB.DB)
	_, err := customerService.Purchase(ctx, customer.ID, coupon.ID)
	require.NoError(t, err)

	require.NoError(t, testDB.DB.Model(coupon).
		Update("end_date", time.Now().AddDate(0, 0, -1)).Error)

	sweeper := service.NewCouponSweeper(repos.Coupon, 50*time.Millisecond, zerolog.Nop())
	sweepCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go sweeper.Run(sweepCtx)

	require.Eventually(t, func() bool {
		_, err := repos.Coupon.GetByID(ctx, coupon.ID)
		return errors.Is(err, gorm.ErrRecordNotFound)
	}, 3*time.Second, 50*time.Millisecond)

	held, err := customerService.ListPurchased(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, held)
}

func TestCouponSweeper_StopsOnCancel(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)

	sweeper := service.NewCouponSweeper(repos.Coupon, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}
