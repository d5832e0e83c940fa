package view_cart

import (
	"context"

	"github.com/light-bringer/cart-service/internal/app/cart/contracts"
	"github.com/light-bringer/cart-service/internal/app/cart/store"
)

// Query assembles the display-ready cart view with derived totals.
type Query struct {
	store *store.CartStore
}

// NewQuery creates a new view cart query.
func NewQuery(store *store.CartStore) *Query {
	return &Query{store: store}
}

// Execute returns the current cart contents and price breakdown.
// Amounts are formatted to two decimals at this boundary; everything
// upstream stays exact.
func (q *Query) Execute(ctx context.Context) *contracts.CartView {
	_ = ctx

	lines := q.store.Lines()
	dtos := make([]contracts.CartLineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, contracts.CartLineDTO{
			LineID:  line.ID,
			Title:   line.Title,
			Price:   line.Price.String(),
			AddedAt: line.AddedAt,
		})
	}

	totals := q.store.Totals()
	view := &contracts.CartView{
		Lines:           dtos,
		Subtotal:        totals.Subtotal.String(),
		DiscountPercent: totals.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount.String(),
		Total:           totals.Total.String(),
		CouponCode:      q.store.CouponCode(),
		Degraded:        q.store.Degraded(),
	}
	if err := q.store.CouponError(); err != nil {
		view.CouponError = err.Error()
	}
	return view
}
