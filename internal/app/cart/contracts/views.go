package contracts

import "time"

// CartLineDTO is a display-ready cart line.
type CartLineDTO struct {
	LineID  string
	Title   string
	Price   string // two-decimal string, e.g. "1499.00"
	AddedAt time.Time
}

// CartView is the display-ready cart state with derived totals.
type CartView struct {
	Lines           []CartLineDTO
	Subtotal        string
	DiscountPercent int64
	DiscountAmount  string
	Total           string
	CouponCode      string
	CouponError     string
	Degraded        bool // persistence unavailable, cart is memory-only
}

// ProductDTO is a display-ready catalog entry.
type ProductDTO struct {
	ProductID   string
	Title       string
	Description string
	Category    string
	Price       string
	Features    []string
}

// ProductFilter defines catalog browsing options.
type ProductFilter struct {
	Category      string // empty means all categories
	MaxPriceCents int64  // 0 means no ceiling
	Search        string // case-insensitive substring match on title
	Sort          string // "", "price_asc" or "price_desc"
}
