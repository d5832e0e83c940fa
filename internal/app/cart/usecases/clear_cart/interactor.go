package clear_cart

import (
	"context"

	"github.com/light-bringer/cart-service/internal/app/cart/store"
)

// Interactor handles the explicit cart reset use case.
type Interactor struct {
	store *store.CartStore
}

// NewInteractor creates a new clear cart interactor.
func NewInteractor(store *store.CartStore) *Interactor {
	return &Interactor{store: store}
}

// Execute empties the cart and removes the persisted snapshot.
func (i *Interactor) Execute(ctx context.Context) {
	i.store.Clear(ctx)
}
