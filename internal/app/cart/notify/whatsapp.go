// Package notify provides the outbound order channels. The storefront
// keeps no order record of its own; whatever reaches one of these
// notifiers is the only trace of the order.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/light-bringer/cart-service/internal/app/cart/domain"
)

// WhatsAppNotifier formats the order summary as a wa.me deep link and
// writes it to the configured writer, where the user (or the UI shell)
// opens it. This mirrors the storefront's original handoff, which
// opened the deep link in a new tab.
type WhatsAppNotifier struct {
	number string // international format without "+", e.g. "917865089698"
	out    io.Writer
}

// NewWhatsAppNotifier creates a notifier targeting the given number.
func NewWhatsAppNotifier(number string, out io.Writer) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		number: number,
		out:    out,
	}
}

// Notify writes the deep link for the order summary.
func (n *WhatsAppNotifier) Notify(_ context.Context, summary *domain.OrderSummary) error {
	link := n.DeepLink(summary)
	if _, err := fmt.Fprintln(n.out, link); err != nil {
		return errors.Wrap(err, "write order deep link")
	}
	return nil
}

// DeepLink builds the wa.me URL carrying the formatted order text.
func (n *WhatsAppNotifier) DeepLink(summary *domain.OrderSummary) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", n.number, url.QueryEscape(FormatOrderText(summary)))
}

// FormatOrderText renders the order summary as the message body. The
// format is deterministic: same summary, same text.
func FormatOrderText(summary *domain.OrderSummary) string {
	var b strings.Builder

	b.WriteString("New order\n")
	if summary.Contact.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", summary.Contact.Name)
	}
	if summary.Contact.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", summary.Contact.Email)
	}
	if summary.Contact.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", summary.Contact.Phone)
	}

	for i, item := range summary.Items {
		fmt.Fprintf(&b, "%d. %s - $%s\n", i+1, item.Title, item.Price.String())
	}

	fmt.Fprintf(&b, "Subtotal: $%s\n", summary.Subtotal.String())
	if summary.DiscountPercent > 0 {
		fmt.Fprintf(&b, "Discount: %d%% (-$%s)\n", summary.DiscountPercent, summary.DiscountAmount.String())
	}
	fmt.Fprintf(&b, "Total: $%s\n", summary.Total.String())
	fmt.Fprintf(&b, "Placed: %s", summary.PlacedAt.UTC().Format("2006-01-02 15:04:05 UTC"))

	return b.String()
}
