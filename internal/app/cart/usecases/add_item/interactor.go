package add_item

import (
	"context"

	"github.com/light-bringer/cart-service/internal/app/cart/domain"
	"github.com/light-bringer/cart-service/internal/app/cart/store"
	"github.com/light-bringer/cart-service/internal/catalog"
)

// Request contains the data to add a catalog product to the cart.
type Request struct {
	ProductID string
}

// Interactor handles the add item use case.
type Interactor struct {
	store   *store.CartStore
	catalog *catalog.Catalog
}

// NewInteractor creates a new add item interactor.
func NewInteractor(store *store.CartStore, catalog *catalog.Catalog) *Interactor {
	return &Interactor{
		store:   store,
		catalog: catalog,
	}
}

// Execute resolves the product and appends a new cart line. Adding the
// same product repeatedly yields independent lines.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Line, error) {
	product, ok := i.catalog.Find(req.ProductID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	line := i.store.AddItem(ctx, product)
	return &line, nil
}
