package domain

type Company struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Name     string   `json:"name"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null"`
	Password string   `json:"password" gorm:"not null"`
	Coupons  []Coupon `json:"coupons,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}
