package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/cart-service/internal/app/cart/contracts"
	"github.com/light-bringer/cart-service/internal/app/cart/domain"
	"github.com/light-bringer/cart-service/internal/app/cart/store"
	"github.com/light-bringer/cart-service/internal/pkg/clock"
)

// State is the observable checkout state.
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
)

// DefaultWindow is the success acknowledgment window between placing an
// order and clearing the cart.
const DefaultWindow = 3 * time.Second

// Request contains the optional customer contact fields.
type Request struct {
	Name  string
	Email string
	Phone string
}

// Interactor sequences the checkout flow: Idle -> Processing on a
// checkout action, then back to Idle after the success window elapses,
// at which point the cart is cleared.
//
// Notification is best-effort. The storefront has no backend order
// record, so a failed handoff is logged and the flow still completes;
// blocking the user on delivery would leave them stuck with no retry
// path either way.
//
// Dismissing the confirmation early does not cancel the pending clear:
// context cancellation cuts the window short but the clear still runs,
// matching the always-completes behavior users of the storefront
// already rely on.
type Interactor struct {
	store    *store.CartStore
	notifier contracts.Notifier
	clock    clock.Clock
	window   time.Duration
	log      *logrus.Logger

	mu    sync.Mutex
	state State
	done  chan struct{}
}

// NewInteractor creates a new checkout interactor. A non-positive
// window falls back to DefaultWindow.
func NewInteractor(
	store *store.CartStore,
	notifier contracts.Notifier,
	clk clock.Clock,
	window time.Duration,
	log *logrus.Logger,
) *Interactor {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Interactor{
		store:    store,
		notifier: notifier,
		clock:    clk,
		window:   window,
		log:      log,
		state:    StateIdle,
	}
}

// Execute starts a checkout. Preconditions: the cart is non-empty and
// no checkout is already processing. On success it hands the order
// summary to the notifier, schedules the cart clear, and returns the
// summary immediately; use Wait to block until the window elapses.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.OrderSummary, error) {
	i.mu.Lock()
	if i.state == StateProcessing {
		i.mu.Unlock()
		return nil, domain.ErrCheckoutInProgress
	}
	if i.store.IsEmpty() {
		i.mu.Unlock()
		return nil, domain.ErrEmptyCheckout
	}

	summary := i.store.BuildOrderSummary(domain.Contact{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	i.state = StateProcessing
	i.done = make(chan struct{})
	done := i.done
	i.mu.Unlock()

	if err := i.notifier.Notify(ctx, summary); err != nil {
		i.log.WithError(err).Warn("Order notification failed, completing checkout anyway")
	}

	go i.completeAfterWindow(ctx, summary, done)

	return summary, nil
}

// State returns the current checkout state.
func (i *Interactor) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Wait blocks until the in-flight checkout completes. Returns
// immediately when Idle.
func (i *Interactor) Wait() {
	i.mu.Lock()
	done := i.done
	i.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (i *Interactor) completeAfterWindow(ctx context.Context, summary *domain.OrderSummary, done chan struct{}) {
	timer := time.NewTimer(i.window)
	select {
	case <-timer.C:
	case <-ctx.Done():
		// Early dismissal shortens the window; the clear still runs.
		timer.Stop()
	}

	// The clear must not be lost to a canceled request context.
	i.store.Clear(context.Background())

	event := &domain.CheckoutCompletedEvent{
		ItemCount:   len(summary.Items),
		TotalCents:  summary.Total.Cents(),
		CompletedAt: i.clock.Now(),
	}
	i.log.WithField("event", event).Info(event.EventType())

	i.mu.Lock()
	i.state = StateIdle
	i.done = nil
	i.mu.Unlock()
	close(done)
}
