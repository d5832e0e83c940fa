package services

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/cart-service/internal/app/cart/contracts"
	"github.com/light-bringer/cart-service/internal/app/cart/notify"
	"github.com/light-bringer/cart-service/internal/app/cart/queries/list_products"
	"github.com/light-bringer/cart-service/internal/app/cart/queries/view_cart"
	"github.com/light-bringer/cart-service/internal/app/cart/repo"
	"github.com/light-bringer/cart-service/internal/app/cart/store"
	"github.com/light-bringer/cart-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/cart-service/internal/app/cart/usecases/apply_coupon"
	"github.com/light-bringer/cart-service/internal/app/cart/usecases/checkout"
	"github.com/light-bringer/cart-service/internal/app/cart/usecases/clear_cart"
	"github.com/light-bringer/cart-service/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/cart-service/internal/catalog"
	"github.com/light-bringer/cart-service/internal/config"
	"github.com/light-bringer/cart-service/internal/pkg/clock"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Store    *store.CartStore
	Catalog  *catalog.Catalog
	Coupons  *catalog.CouponTable
	Notifier contracts.Notifier

	AddItem     *add_item.Interactor
	RemoveItem  *remove_item.Interactor
	ClearCart   *clear_cart.Interactor
	ApplyCoupon *apply_coupon.Interactor
	Checkout    *checkout.Interactor

	ViewCart     *view_cart.Query
	ListProducts *list_products.Query
}

// NewServiceOptions creates and wires up all application dependencies.
// Order links produced by the notifier are written to out.
func NewServiceOptions(cfg *config.Config, log *logrus.Logger, out io.Writer) (*ServiceOptions, error) {
	// 1. Infrastructure
	clk := clock.NewRealClock()

	var snaps contracts.SnapshotStore
	if cfg.SnapshotPath != "" {
		snaps = repo.NewFileStore(cfg.SnapshotPath)
	} else {
		snaps = repo.NewMemoryStore()
	}

	// 2. Static data
	productCatalog := catalog.NewCatalog()

	coupons := catalog.DefaultCoupons()
	if cfg.CouponFile != "" {
		loaded, err := catalog.LoadCoupons(cfg.CouponFile)
		if err != nil {
			return nil, err
		}
		coupons = loaded
	}

	// 3. Cart store
	cartStore := store.NewCartStore(snaps, clk, log)

	// 4. Outbound channel
	var notifier contracts.Notifier
	if cfg.WhatsAppNumber != "" {
		notifier = notify.NewWhatsAppNotifier(cfg.WhatsAppNumber, out)
	} else {
		notifier = notify.NewLogNotifier(log)
	}

	// 5. Use cases
	addItemUseCase := add_item.NewInteractor(cartStore, productCatalog)
	removeItemUseCase := remove_item.NewInteractor(cartStore)
	clearCartUseCase := clear_cart.NewInteractor(cartStore)
	applyCouponUseCase := apply_coupon.NewInteractor(cartStore, coupons)
	checkoutUseCase := checkout.NewInteractor(cartStore, notifier, clk, cfg.CheckoutWindow, log)

	// 6. Queries
	viewCartQuery := view_cart.NewQuery(cartStore)
	listProductsQuery := list_products.NewQuery(productCatalog)

	return &ServiceOptions{
		Store:        cartStore,
		Catalog:      productCatalog,
		Coupons:      coupons,
		Notifier:     notifier,
		AddItem:      addItemUseCase,
		RemoveItem:   removeItemUseCase,
		ClearCart:    clearCartUseCase,
		ApplyCoupon:  applyCouponUseCase,
		Checkout:     checkoutUseCase,
		ViewCart:     viewCartQuery,
		ListProducts: listProductsQuery,
	}, nil
}
