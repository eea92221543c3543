package domain

import "time"

type Coupon struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CompanyID   uint      `json:"companyId" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Price       float64   `json:"price"`
	Amount      int       `json:"amount"`
	Category    int       `json:"category"`
	ImageURL    string    `json:"imageUrl"`
}
