package domain

import (
	"math/big"
)

// Coupon represents a percentage discount matched from the coupon table.
// Coupons are stateless and reusable: no expiry, no single-use
// enforcement, no claim tracking.
type Coupon struct {
	code               string // normalized (trimmed, upper-cased)
	percentage         int64  // 0-100
	discountMultiplier *big.Rat
}

// NewCoupon creates a Coupon with validation. The code is expected to be
// already normalized by the caller.
func NewCoupon(code string, percentage int64) (*Coupon, error) {
	if percentage < 0 || percentage > 100 {
		return nil, ErrInvalidDiscountPercent
	}

	return &Coupon{
		code:               code,
		percentage:         percentage,
		discountMultiplier: big.NewRat(percentage, 100),
	}, nil
}

// Code returns the normalized coupon code.
func (c *Coupon) Code() string {
	return c.code
}

// Percentage returns the discount percentage.
func (c *Coupon) Percentage() int64 {
	return c.percentage
}

// DiscountAmount calculates the discount taken off the given subtotal.
func (c *Coupon) DiscountAmount(subtotal *Money) *Money {
	return subtotal.MultiplyByRat(c.discountMultiplier)
}
