package domain

import (
	"math/big"
)

// PricingCalculator is a domain service for cart total calculations.
// It centralizes the pricing formulas so that the cart aggregate, the
// checkout flow, and the read side all derive totals the same way.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// Package-level calculator instance for domain object use
var defaultPricingCalculator = NewPricingCalculator()

// Totals holds the derived price breakdown for a cart. Amounts are exact
// internally; callers round at the display boundary via Money.
type Totals struct {
	Subtotal        *Money
	DiscountPercent int64
	DiscountAmount  *Money
	Total           *Money
}

// Subtotal sums the line prices in order.
// Formula: subtotal = sum(line.price)
func (pc *PricingCalculator) Subtotal(lines []Line) *Money {
	subtotal := ZeroMoney()
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price)
	}
	return subtotal
}

// DiscountAmount calculates the discount taken off a subtotal.
// Formula: discountAmount = subtotal * percent / 100
func (pc *PricingCalculator) DiscountAmount(subtotal *Money, percent int64) *Money {
	return subtotal.MultiplyByRat(big.NewRat(percent, 100))
}

// Total calculates the final amount.
// Formula: total = subtotal - discountAmount
func (pc *PricingCalculator) Total(subtotal, discountAmount *Money) *Money {
	return subtotal.Subtract(discountAmount)
}

// Quote derives the full price breakdown for a set of lines and an
// active discount percentage. An empty cart yields all-zero totals
// regardless of the discount.
func (pc *PricingCalculator) Quote(lines []Line, discountPercent int64) Totals {
	subtotal := pc.Subtotal(lines)
	discountAmount := pc.DiscountAmount(subtotal, discountPercent)
	return Totals{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		Total:           pc.Total(subtotal, discountAmount),
	}
}
