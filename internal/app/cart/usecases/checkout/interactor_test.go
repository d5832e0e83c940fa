package checkout

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/cart-service/internal/app/cart/domain"
	"github.com/light-bringer/cart-service/internal/app/cart/repo"
	"github.com/light-bringer/cart-service/internal/app/cart/store"
	"github.com/light-bringer/cart-service/internal/pkg/clock"
)

const testWindow = 100 * time.Millisecond

// recordingNotifier captures delivered summaries and optionally fails.
type recordingNotifier struct {
	mu        sync.Mutex
	summaries []*domain.OrderSummary
	fail      bool
}

func (n *recordingNotifier) Notify(_ context.Context, summary *domain.OrderSummary) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("channel unreachable")
	}
	n.summaries = append(n.summaries, summary)
	return nil
}

func (n *recordingNotifier) delivered() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.summaries)
}

func newFixture(t *testing.T, notifier *recordingNotifier) (*Interactor, *store.CartStore) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	clk := clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cartStore := store.NewCartStore(repo.NewMemoryStore(), clk, log)
	return NewInteractor(cartStore, notifier, clk, testWindow, log), cartStore
}

func fillCart(ctx context.Context, cartStore *store.CartStore) {
	cartStore.AddItem(ctx, domain.Product{ID: "p1", Title: "Product p1", Price: domain.NewMoneyFromUnits(999)})
	cartStore.AddItem(ctx, domain.Product{ID: "p2", Title: "Product p2", Price: domain.NewMoneyFromUnits(499)})
}

func TestCheckout_HappyPath(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	interactor, cartStore := newFixture(t, notifier)
	fillCart(ctx, cartStore)

	summary, err := interactor.Execute(ctx, &Request{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	assert.Equal(t, StateProcessing, interactor.State())
	assert.Equal(t, 1, notifier.delivered())
	assert.Equal(t, "1498.00", summary.Total.String())
	assert.Len(t, summary.Items, 2)

	interactor.Wait()

	assert.Equal(t, StateIdle, interactor.State())
	assert.True(t, cartStore.IsEmpty())
}

func TestCheckout_AppliesCouponToSummary(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	interactor, cartStore := newFixture(t, notifier)
	fillCart(ctx, cartStore)

	coupon, err := domain.NewCoupon("SAVE10", 10)
	require.NoError(t, err)
	cartStore.ApplyCoupon(ctx, coupon)

	summary, err := interactor.Execute(ctx, &Request{})
	require.NoError(t, err)

	assert.Equal(t, int64(10), summary.DiscountPercent)
	assert.Equal(t, "149.80", summary.DiscountAmount.String())
	assert.Equal(t, "1348.20", summary.Total.String())
	interactor.Wait()
}

// Each CLI command runs in its own process, so the cart state a checkout
// sees comes entirely from the persisted snapshot. Items and coupon
// applied through one store instance must carry into a checkout run
// against a freshly hydrated one.
func TestCheckout_UsesRehydratedCouponState(t *testing.T) {
	ctx := context.Background()
	log := logrus.New()
	log.SetOutput(io.Discard)
	clk := clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	snaps := repo.NewMemoryStore()

	adder := store.NewCartStore(snaps, clk, log)
	adder.Hydrate(ctx)
	fillCart(ctx, adder)

	applier := store.NewCartStore(snaps, clk, log)
	applier.Hydrate(ctx)
	coupon, err := domain.NewCoupon("SAVE10", 10)
	require.NoError(t, err)
	applier.ApplyCoupon(ctx, coupon)

	checkouter := store.NewCartStore(snaps, clk, log)
	checkouter.Hydrate(ctx)
	interactor := NewInteractor(checkouter, &recordingNotifier{}, clk, testWindow, log)

	summary, err := interactor.Execute(ctx, &Request{Name: "Ada"})
	require.NoError(t, err)

	assert.Equal(t, int64(10), summary.DiscountPercent)
	assert.Equal(t, "149.80", summary.DiscountAmount.String())
	assert.Equal(t, "1348.20", summary.Total.String())
	interactor.Wait()

	// The post-checkout clear reaches storage too.
	after := store.NewCartStore(snaps, clk, log)
	after.Hydrate(ctx)
	assert.True(t, after.IsEmpty())
	assert.Empty(t, after.CouponCode())
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	notifier := &recordingNotifier{}
	interactor, _ := newFixture(t, notifier)

	_, err := interactor.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, domain.ErrEmptyCheckout)
	assert.Equal(t, StateIdle, interactor.State())
	assert.Equal(t, 0, notifier.delivered())
}

func TestCheckout_RejectsConcurrentCheckout(t *testing.T) {
	ctx := context.Background()
	interactor, cartStore := newFixture(t, &recordingNotifier{})
	fillCart(ctx, cartStore)

	_, err := interactor.Execute(ctx, &Request{})
	require.NoError(t, err)

	_, err = interactor.Execute(ctx, &Request{})
	assert.ErrorIs(t, err, domain.ErrCheckoutInProgress)

	interactor.Wait()

	// A fresh checkout is allowed once Idle again.
	fillCart(ctx, cartStore)
	_, err = interactor.Execute(ctx, &Request{})
	assert.NoError(t, err)
	interactor.Wait()
}

func TestCheckout_NotifierFailureStillCompletes(t *testing.T) {
	ctx := context.Background()
	interactor, cartStore := newFixture(t, &recordingNotifier{fail: true})
	fillCart(ctx, cartStore)

	_, err := interactor.Execute(ctx, &Request{})
	require.NoError(t, err)

	interactor.Wait()
	assert.Equal(t, StateIdle, interactor.State())
	assert.True(t, cartStore.IsEmpty())
}

func TestCheckout_CancellationStillClears(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	interactor, cartStore := newFixture(t, &recordingNotifier{})
	fillCart(context.Background(), cartStore)

	_, err := interactor.Execute(ctx, &Request{})
	require.NoError(t, err)

	// Dismissing the confirmation shortens the window but never skips
	// the clear.
	cancel()
	interactor.Wait()

	assert.Equal(t, StateIdle, interactor.State())
	assert.True(t, cartStore.IsEmpty())
}

func TestCheckout_WaitOnIdleReturnsImmediately(t *testing.T) {
	interactor, _ := newFixture(t, &recordingNotifier{})

	done := make(chan struct{})
	go func() {
		interactor.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked with no checkout in flight")
	}
}
