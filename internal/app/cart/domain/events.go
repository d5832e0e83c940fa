package domain

import "time"

// CartEvent is the base interface for all cart events. Events are
// drained after each mutation and emitted to the structured log.
type CartEvent interface {
	EventType() string
}

// ItemAddedEvent is emitted when a product is added to the cart.
type ItemAddedEvent struct {
	LineID    string
	ProductID string
	Title     string
	Price     *Money
	AddedAt   time.Time
}

func (e *ItemAddedEvent) EventType() string {
	return "cart.item_added"
}

// ItemRemovedEvent is emitted when a line is removed from the cart.
type ItemRemovedEvent struct {
	LineID    string
	ProductID string
	RemovedAt time.Time
}

func (e *ItemRemovedEvent) EventType() string {
	return "cart.item_removed"
}

// CartClearedEvent is emitted when the cart is emptied.
type CartClearedEvent struct {
	LineCount int
	ClearedAt time.Time
}

func (e *CartClearedEvent) EventType() string {
	return "cart.cleared"
}

// CouponAppliedEvent is emitted when a valid coupon is applied.
type CouponAppliedEvent struct {
	Code      string
	Percent   int64
	AppliedAt time.Time
}

func (e *CouponAppliedEvent) EventType() string {
	return "cart.coupon_applied"
}

// CouponRejectedEvent is emitted when a coupon submission is rejected.
type CouponRejectedEvent struct {
	Reason     string
	RejectedAt time.Time
}

func (e *CouponRejectedEvent) EventType() string {
	return "cart.coupon_rejected"
}

// CheckoutCompletedEvent is emitted when the checkout success window
// elapses and the cart is cleared.
type CheckoutCompletedEvent struct {
	ItemCount   int
	TotalCents  int64
	CompletedAt time.Time
}

func (e *CheckoutCompletedEvent) EventType() string {
	return "checkout.completed"
}
