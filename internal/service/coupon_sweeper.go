package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Moshe1988/CouponManagementSystem/internal/repository"
)

// DefaultCouponSweepInterval is how often expired coupons are purged.
const DefaultCouponSweepInterval = 24 * time.Hour

// CouponSweeper purges coupons whose end date has passed. It runs
// independently of the session machinery, treats storage failures as
// transient and stops cooperatively when its context is cancelled.
type CouponSweeper struct {
	couponRepo repository.CouponRepository
	interval   time.Duration
	log        zerolog.Logger
}

func NewCouponSweeper(couponRepo repository.CouponRepository, interval time.Duration, log zerolog.Logger) *CouponSweeper {
	if interval <= 0 {
		interval = DefaultCouponSweepInterval
	}
	return &CouponSweeper{
		couponRepo: couponRepo,
		interval:   interval,
		log:        log.With().Str("component", "coupon_sweeper").Logger(),
	}
}

// Run blocks until ctx is cancelled, purging once per interval. A failed
// pass is logged and retried on the next tick; it never stops the loop.
func (s *CouponSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("coupon sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("coupon sweeper stopped")
			return
		case <-ticker.C:
			s.purgeExpired(ctx)
		}
	}
}

func (s *CouponSweeper) purgeExpired(ctx context.Context) {
	expired, err := s.couponRepo.GetExpiredBefore(ctx, time.Now())
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to query expired coupons, will retry next pass")
		return
	}
	if len(expired) == 0 {
		return
	}
	if err := s.couponRepo.DeleteBatch(ctx, expired); err != nil {
		s.log.Warn().Err(err).Int("count", len(expired)).Msg("failed to delete expired coupons, will retry next pass")
		return
	}
	s.log.Info().Int("count", len(expired)).Msg("deleted expired coupons")
}
