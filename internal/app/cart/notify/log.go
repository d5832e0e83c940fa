package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/cart-service/internal/app/cart/domain"
)

// LogNotifier records the order summary in the structured log. Used as
// the outbound channel when no messaging number is configured.
type LogNotifier struct {
	log *logrus.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs the order summary fields.
func (n *LogNotifier) Notify(_ context.Context, summary *domain.OrderSummary) error {
	n.log.WithFields(logrus.Fields{
		"name":             summary.Contact.Name,
		"email":            summary.Contact.Email,
		"phone":            summary.Contact.Phone,
		"items":            len(summary.Items),
		"subtotal":         summary.Subtotal.String(),
		"discount_percent": summary.DiscountPercent,
		"discount_amount":  summary.DiscountAmount.String(),
		"total":            summary.Total.String(),
		"placed_at":        summary.PlacedAt,
	}).Info("Order placed")
	return nil
}
