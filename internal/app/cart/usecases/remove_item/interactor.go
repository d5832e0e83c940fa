package remove_item

import (
	"context"

	"github.com/light-bringer/cart-service/internal/app/cart/store"
)

// Request contains the line to remove.
type Request struct {
	LineID string
}

// Interactor handles the remove item use case.
type Interactor struct {
	store *store.CartStore
}

// NewInteractor creates a new remove item interactor.
func NewInteractor(store *store.CartStore) *Interactor {
	return &Interactor{store: store}
}

// Execute removes the cart line with the given stable ID. Removal by ID
// rather than display position keeps a re-rendered list from removing
// the wrong entry. An unknown ID is a silent no-op; Execute reports
// whether anything was removed.
func (i *Interactor) Execute(ctx context.Context, req *Request) bool {
	return i.store.RemoveLine(ctx, req.LineID)
}
