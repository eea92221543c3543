package postgres

import (
	"context"
	"time"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *couponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *couponRepository) GetByID(ctx context.Context, id uint) (*domain.Coupon, error) {
	var coupon domain.Coupon
	err := r.db.WithContext(ctx).First(&coupon, id).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetByTitle(ctx context.Context, title string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	err := r.db.WithContext(ctx).First(&coupon, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetAll(ctx context.Context) ([]*domain.Coupon, error) {
	var coupons []*domain.Coupon
	err := r.db.WithContext(ctx).Find(&coupons).Error
	if err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) GetByCompanyID(ctx context.Context, companyID uint) ([]*domain.Coupon, error) {
	var coupons []*domain.Coupon
	err := r.db.WithContext(ctx).Find(&coupons, "company_id = ?", companyID).Error
	if err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]*domain.Coupon, error) {
	var coupons []*domain.Coupon
	err := r.db.WithContext(ctx).
		Joins("JOIN customer_coupons cc ON cc.coupon_id = coupons.id").
		Where("cc.customer_id = ?", customerID).
		Find(&coupons).Error
	if err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) GetExpiredBefore(ctx context.Context, t time.Time) ([]*domain.Coupon, error) {
	var coupons []*domain.Coupon
	err := r.db.WithContext(ctx).Find(&coupons, "end_date < ?", t).Error
	if err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) Update(ctx context.Context, coupon *domain.Coupon) error {
	return r.db.WithContext(ctx).Save(coupon).Error
}

func (r *couponRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM customer_coupons WHERE coupon_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Coupon{}, id).Error
	})
}

func (r *couponRepository) DeleteBatch(ctx context.Context, coupons []*domain.Coupon) error {
	if len(coupons) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(coupons))
	for _, c := range coupons {
		ids = append(ids, c.ID)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM customer_coupons WHERE coupon_id IN ?", ids).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Coupon{}, ids).Error
	})
}

// Purchase appends the customer-coupon edge and decrements the amount in one
// transaction. The coupon row is locked for the duration so two purchases of
// the last unit cannot both succeed, and the edge is re-checked under the
// same lock so a concurrent duplicate purchase cannot decrement twice.
func (r *couponRepository) Purchase(ctx context.Context, customerID, couponID uint) (*domain.Coupon, error) {
	var coupon domain.Coupon
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&coupon, couponID).Error; err != nil {
			return err
		}
		if coupon.Amount <= 0 {
			return domain.ErrOutOfStock
		}
		var held int64
		if err := tx.Table("customer_coupons").
			Where("customer_id = ? AND coupon_id = ?", customerID, couponID).
			Count(&held).Error; err != nil {
			return err
		}
		if held > 0 {
			return domain.ErrAlreadyPurchased
		}
		coupon.Amount--
		if err := tx.Model(&coupon).Update("amount", coupon.Amount).Error; err != nil {
			return err
		}
		customer := domain.Customer{ID: customerID}
		return tx.Model(&customer).Association("Coupons").Append(&domain.Coupon{ID: coupon.ID})
	})
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}
