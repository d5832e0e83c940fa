package apply_coupon

import (
	"context"
	"strings"

	"github.com/light-bringer/cart-service/internal/app/cart/domain"
	"github.com/light-bringer/cart-service/internal/app/cart/store"
	"github.com/light-bringer/cart-service/internal/catalog"
)

// Request contains the user-submitted coupon code.
type Request struct {
	Code string
}

// Interactor handles the apply coupon use case.
type Interactor struct {
	store   *store.CartStore
	coupons *catalog.CouponTable
}

// NewInteractor creates a new apply coupon interactor.
func NewInteractor(store *store.CartStore, coupons *catalog.CouponTable) *Interactor {
	return &Interactor{
		store:   store,
		coupons: coupons,
	}
}

// Execute validates the submitted code against the coupon table and
// updates the cart's coupon state. The code is trimmed and compared
// case-insensitively. On success it returns the discount percentage;
// on failure the active discount is zeroed and the rejection recorded,
// so a nonzero discount and a coupon error never coexist.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int64, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		i.store.RejectCoupon(ctx, domain.ErrCouponRequired)
		return 0, domain.ErrCouponRequired
	}

	code = strings.ToUpper(code)
	percent, ok := i.coupons.Lookup(code)
	if !ok {
		i.store.RejectCoupon(ctx, domain.ErrUnknownCoupon)
		return 0, domain.ErrUnknownCoupon
	}

	coupon, err := domain.NewCoupon(code, percent)
	if err != nil {
		// Misconfigured table entry; treat like an unknown code.
		i.store.RejectCoupon(ctx, domain.ErrUnknownCoupon)
		return 0, err
	}

	i.store.ApplyCoupon(ctx, coupon)
	return percent, nil
}
