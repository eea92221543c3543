package domain

type Customer struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email" gorm:"uniqueIndex;not null"`
	Password  string   `json:"password" gorm:"not null"`
	Coupons   []Coupon `json:"coupons,omitempty" gorm:"many2many:customer_coupons"`
}
