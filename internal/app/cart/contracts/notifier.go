package contracts

import (
	"context"

	"github.com/light-bringer/cart-service/internal/app/cart/domain"
)

// Notifier is the outbound order channel (messaging deep link, email).
// Delivery is best-effort: a failed notification never blocks the
// checkout flow, since the storefront keeps no order record of its own.
type Notifier interface {
	Notify(ctx context.Context, summary *domain.OrderSummary) error
}
