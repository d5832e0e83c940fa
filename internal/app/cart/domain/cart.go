package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/cart-service/internal/pkg/clock"
)

// Line is a single cart entry. Every add-to-cart creates a new line with
// an implicit quantity of one; adding the same product twice yields two
// independent lines. Each line carries a stable opaque ID assigned at
// insertion time, and removal goes through that ID rather than a
// positional index so stale display indices can never remove the wrong
// entry.
type Line struct {
	ID        string
	ProductID string
	Title     string
	Price     *Money
	AddedAt   time.Time
}

// Cart is the aggregate root for the shopping session. It holds the
// ordered line sequence and the coupon state, and records events for
// every mutation.
//
// Coupon invariant: a nonzero discount and a coupon error are mutually
// exclusive. Applying a valid code clears the error; an invalid or
// missing code zeroes the discount and sets the error.
type Cart struct {
	lines     []Line
	coupon    *Coupon
	couponErr error

	clock clock.Clock

	events []CartEvent
}

// NewCart creates an empty cart.
func NewCart(clk clock.Clock) *Cart {
	return &Cart{
		lines:  make([]Line, 0),
		clock:  clk,
		events: make([]CartEvent, 0),
	}
}

// AddLine appends a new line referencing the product and returns it.
// Always succeeds.
func (c *Cart) AddLine(product Product) Line {
	line := Line{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price.Copy(),
		AddedAt:   c.clock.Now(),
	}
	c.lines = append(c.lines, line)

	c.recordEvent(&ItemAddedEvent{
		LineID:    line.ID,
		ProductID: line.ProductID,
		Title:     line.Title,
		Price:     line.Price.Copy(),
		AddedAt:   line.AddedAt,
	})
	return line
}

// RemoveLine removes the line with the given ID, preserving the order of
// the remaining lines. An unknown ID is a silent no-op and returns false.
func (c *Cart) RemoveLine(lineID string) bool {
	for i, line := range c.lines {
		if line.ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.recordEvent(&ItemRemovedEvent{
				LineID:    line.ID,
				ProductID: line.ProductID,
				RemovedAt: c.clock.Now(),
			})
			return true
		}
	}
	return false
}

// Clear empties the cart and resets the coupon state.
func (c *Cart) Clear() {
	count := len(c.lines)
	c.lines = make([]Line, 0)
	c.coupon = nil
	c.couponErr = nil
	c.recordEvent(&CartClearedEvent{
		LineCount: count,
		ClearedAt: c.clock.Now(),
	})
}

// ReplaceLines swaps in a hydrated line sequence. Used when restoring a
// persisted snapshot; emits no events.
func (c *Cart) ReplaceLines(lines []Line) {
	c.lines = make([]Line, len(lines))
	copy(c.lines, lines)
}

// RestoreCoupon reinstates a previously granted coupon. Used when
// restoring a persisted snapshot; emits no events.
func (c *Cart) RestoreCoupon(coupon *Coupon) {
	c.coupon = coupon
	c.couponErr = nil
}

// Lines returns a copy of the line sequence in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty returns true if the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Size returns the number of lines.
func (c *Cart) Size() int {
	return len(c.lines)
}

// SetCoupon applies a validated coupon, clearing any previous rejection.
func (c *Cart) SetCoupon(coupon *Coupon) {
	c.coupon = coupon
	c.couponErr = nil
	c.recordEvent(&CouponAppliedEvent{
		Code:      coupon.Code(),
		Percent:   coupon.Percentage(),
		AppliedAt: c.clock.Now(),
	})
}

// RejectCoupon records a failed coupon submission, zeroing any active
// discount.
func (c *Cart) RejectCoupon(reason error) {
	c.coupon = nil
	c.couponErr = reason
	c.recordEvent(&CouponRejectedEvent{
		Reason:     reason.Error(),
		RejectedAt: c.clock.Now(),
	})
}

// Coupon returns the active coupon, or nil.
func (c *Cart) Coupon() *Coupon {
	return c.coupon
}

// CouponError returns the last coupon rejection, or nil.
func (c *Cart) CouponError() error {
	return c.couponErr
}

// DiscountPercent returns the active discount percentage (0 when no
// coupon is applied).
func (c *Cart) DiscountPercent() int64 {
	if c.coupon == nil {
		return 0
	}
	return c.coupon.Percentage()
}

// Totals derives the current price breakdown.
func (c *Cart) Totals() Totals {
	return defaultPricingCalculator.Quote(c.lines, c.DiscountPercent())
}

// BuildOrderSummary derives the checkout handoff payload from the
// current cart state. The summary is ephemeral and not persisted.
func (c *Cart) BuildOrderSummary(contact Contact) *OrderSummary {
	totals := c.Totals()
	items := make([]OrderItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, OrderItem{
			Title: line.Title,
			Price: line.Price.Copy(),
		})
	}
	return &OrderSummary{
		Contact:         contact,
		Items:           items,
		Subtotal:        totals.Subtotal,
		DiscountPercent: totals.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		Total:           totals.Total,
		PlacedAt:        c.clock.Now(),
	}
}

// DrainEvents returns the recorded events and clears the buffer.
func (c *Cart) DrainEvents() []CartEvent {
	events := c.events
	c.events = make([]CartEvent, 0)
	return events
}

func (c *Cart) recordEvent(event CartEvent) {
	c.events = append(c.events, event)
}
