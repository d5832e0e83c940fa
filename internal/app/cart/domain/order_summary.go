package domain

import "time"

// Contact holds the optional customer contact fields collected at
// checkout. All fields may be empty.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// OrderItem is one line of the checkout handoff payload.
type OrderItem struct {
	Title string
	Price *Money
}

// OrderSummary is the payload handed to the external notifier at
// checkout time. It is the only record of the order; there is no
// backend order store.
type OrderSummary struct {
	Contact         Contact
	Items           []OrderItem
	Subtotal        *Money
	DiscountPercent int64
	DiscountAmount  *Money
	Total           *Money
	PlacedAt        time.Time
}
