package domain

import "errors"

// Domain errors as sentinel values
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Coupon errors
	ErrCouponRequired         = errors.New("coupon code is required")
	ErrUnknownCoupon          = errors.New("invalid coupon code")
	ErrInvalidDiscountPercent = errors.New("discount percentage must be between 0 and 100")

	// Checkout errors
	ErrEmptyCheckout      = errors.New("cannot check out an empty cart")
	ErrCheckoutInProgress = errors.New("a checkout is already in progress")

	// Persistence errors
	ErrPersistenceUnavailable = errors.New("cart persistence is unavailable")
)
