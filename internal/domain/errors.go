package domain

import "errors"

// Authentication and session errors
var (
	ErrInvalidCredentials = errors.New("the email or password are invalid")
	ErrSessionExpired     = errors.New("the login timed out, please login again")
)

// Lookup errors
var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCouponNotFound   = errors.New("coupon not found")
)

// Business-rule errors. The first violated rule is returned as-is; rules are
// never aggregated and a failed check never reaches storage.
var (
	ErrInvalidUser      = errors.New("email and password are required")
	ErrInvalidCoupon    = errors.New("coupon title and end date are required")
	ErrEmailExists      = errors.New("email already exists")
	ErrTitleExists      = errors.New("coupon title already exists")
	ErrIllegalChange    = errors.New("illegal change")
	ErrOutOfStock       = errors.New("coupon is out of stock")
	ErrAlreadyPurchased = errors.New("coupon already purchased, duplicates are not allowed")
)
