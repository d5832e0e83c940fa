package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/cart-service/internal/app/cart/contracts"
	"github.com/light-bringer/cart-service/internal/app/cart/domain"
	"github.com/light-bringer/cart-service/internal/pkg/clock"
)

// CartStore owns the cart aggregate and keeps it in sync with the
// persistence slot. Lifecycle: construct, Hydrate once, then mutate;
// every mutation is flushed to the snapshot store before it returns.
//
// Persistence is best-effort. If the snapshot store fails, the cart
// keeps working in memory, the failure is logged at Warn, and Degraded
// reports true; only durability is lost.
type CartStore struct {
	mu         sync.Mutex
	cart       *domain.Cart
	snaps      contracts.SnapshotStore
	log        *logrus.Logger
	degraded   bool
	persistErr error
}

// NewCartStore creates an empty CartStore. Call Hydrate before first use.
func NewCartStore(snaps contracts.SnapshotStore, clk clock.Clock, log *logrus.Logger) *CartStore {
	return &CartStore{
		cart:  domain.NewCart(clk),
		snaps: snaps,
		log:   log,
	}
}

// Hydrate restores the cart from the persisted snapshot. An absent or
// malformed snapshot yields an empty cart, never an error. The coupon
// recorded in the snapshot is restored silently; a snapshot carrying an
// out-of-range percentage is treated as having no coupon.
func (s *CartStore) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snaps.Load(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Cart snapshot unreadable, starting empty")
		return
	}
	if snap == nil {
		return
	}

	lines := make([]domain.Line, 0, len(snap.Lines))
	for _, rec := range snap.Lines {
		lines = append(lines, domain.Line{
			ID:        rec.LineID,
			ProductID: rec.ProductID,
			Title:     rec.Title,
			Price:     domain.NewMoneyFromCents(rec.PriceCents),
			AddedAt:   rec.AddedAt,
		})
	}
	s.cart.ReplaceLines(lines)

	if snap.CouponCode != "" {
		coupon, err := domain.NewCoupon(snap.CouponCode, snap.CouponPercent)
		if err != nil {
			s.log.WithError(err).WithField("code", snap.CouponCode).
				Warn("Persisted coupon invalid, discarding")
			return
		}
		s.cart.RestoreCoupon(coupon)
	}
}

// AddItem appends a new line for the product and persists.
func (s *CartStore) AddItem(ctx context.Context, product domain.Product) domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := s.cart.AddLine(product)
	s.flush(ctx)
	return line
}

// RemoveLine removes the line with the given ID. Unknown IDs are a
// silent no-op; nothing is persisted in that case.
func (s *CartStore) RemoveLine(ctx context.Context, lineID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.cart.RemoveLine(lineID)
	if removed {
		s.flush(ctx)
	}
	return removed
}

// Clear empties the cart and deletes the persisted snapshot.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.logEvents()
	if err := s.snaps.Delete(ctx); err != nil {
		s.markDegraded(err)
	}
}

// ApplyCoupon records a validated coupon, clears any prior rejection,
// and persists so the discount survives the session.
func (s *CartStore) ApplyCoupon(ctx context.Context, coupon *domain.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetCoupon(coupon)
	s.flush(ctx)
}

// RejectCoupon records a failed coupon submission, zeroing the discount.
// The cleared coupon state is persisted as well.
func (s *CartStore) RejectCoupon(ctx context.Context, reason error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.RejectCoupon(reason)
	s.flush(ctx)
}

// Lines returns the current line sequence in insertion order.
func (s *CartStore) Lines() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// IsEmpty returns true when the cart has no lines.
func (s *CartStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

// Totals derives the current price breakdown.
func (s *CartStore) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Totals()
}

// CouponCode returns the active coupon code, or "".
func (s *CartStore) CouponCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := s.cart.Coupon(); c != nil {
		return c.Code()
	}
	return ""
}

// CouponError returns the last coupon rejection, or nil.
func (s *CartStore) CouponError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.CouponError()
}

// BuildOrderSummary derives the checkout handoff payload.
func (s *CartStore) BuildOrderSummary(contact domain.Contact) *domain.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.BuildOrderSummary(contact)
}

// Persist writes the current snapshot without requiring a mutation.
// Mutations persist automatically; this exists for callers that need to
// converge storage explicitly, e.g. before session teardown.
func (s *CartStore) Persist(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flush(ctx)
}

// Degraded reports whether a persistence failure has been observed.
func (s *CartStore) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// PersistenceError returns the error that put the store into degraded
// mode, wrapping ErrPersistenceUnavailable, or nil while healthy.
func (s *CartStore) PersistenceError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistErr
}

// flush emits recorded events to the log and writes the snapshot.
// Callers must hold the mutex.
func (s *CartStore) flush(ctx context.Context) {
	s.logEvents()

	lines := s.cart.Lines()
	snap := &contracts.Snapshot{
		Lines: make([]contracts.LineRecord, 0, len(lines)),
	}
	for _, line := range lines {
		snap.Lines = append(snap.Lines, contracts.LineRecord{
			LineID:     line.ID,
			ProductID:  line.ProductID,
			Title:      line.Title,
			PriceCents: line.Price.Cents(),
			AddedAt:    line.AddedAt,
		})
	}
	if coupon := s.cart.Coupon(); coupon != nil {
		snap.CouponCode = coupon.Code()
		snap.CouponPercent = coupon.Percentage()
	}

	if err := s.snaps.Save(ctx, snap); err != nil {
		s.markDegraded(err)
	}
}

func (s *CartStore) logEvents() {
	for _, event := range s.cart.DrainEvents() {
		s.log.WithField("event", event).Info(event.EventType())
	}
}

func (s *CartStore) markDegraded(err error) {
	s.degraded = true
	s.persistErr = fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	s.log.WithError(err).Warn("Cart persistence unavailable, continuing in memory")
}
