package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/cart-service/internal/app/cart/contracts"
	"github.com/light-bringer/cart-service/internal/app/cart/domain"
	"github.com/light-bringer/cart-service/internal/app/cart/repo"
	"github.com/light-bringer/cart-service/internal/pkg/clock"
)

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testClock() clock.Clock {
	return clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func testProduct(id string, price int64) domain.Product {
	return domain.Product{
		ID:       id,
		Title:    "Product " + id,
		Price:    domain.NewMoneyFromUnits(price),
		Category: domain.CategoryWebsite,
	}
}

// brokenStore fails every operation, simulating an unavailable
// persistence slot.
type brokenStore struct{}

func (brokenStore) Load(context.Context) (*contracts.Snapshot, error) {
	return nil, errors.New("storage disabled")
}

func (brokenStore) Save(context.Context, *contracts.Snapshot) error {
	return errors.New("storage disabled")
}

func (brokenStore) Delete(context.Context) error {
	return errors.New("storage disabled")
}

func TestCartStore_MutationsPersist(t *testing.T) {
	ctx := context.Background()
	snaps := repo.NewMemoryStore()
	cart := NewCartStore(snaps, testClock(), silentLogger())
	cart.Hydrate(ctx)

	line := cart.AddItem(ctx, testProduct("p1", 999))
	cart.AddItem(ctx, testProduct("p2", 499))

	snap, err := snaps.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, line.ID, snap.Lines[0].LineID)
	assert.Equal(t, int64(99900), snap.Lines[0].PriceCents)

	t.Run("removal persists", func(t *testing.T) {
		require.True(t, cart.RemoveLine(ctx, line.ID))
		snap, err := snaps.Load(ctx)
		require.NoError(t, err)
		require.Len(t, snap.Lines, 1)
		assert.Equal(t, "p2", snap.Lines[0].ProductID)
	})

	t.Run("unknown removal writes nothing", func(t *testing.T) {
		before, _ := snaps.Load(ctx)
		assert.False(t, cart.RemoveLine(ctx, "no-such-line"))
		after, _ := snaps.Load(ctx)
		assert.Equal(t, before, after)
	})
}

func TestCartStore_HydrateRestoresCart(t *testing.T) {
	ctx := context.Background()
	snaps := repo.NewMemoryStore()

	first := NewCartStore(snaps, testClock(), silentLogger())
	first.Hydrate(ctx)
	first.AddItem(ctx, testProduct("p1", 999))
	first.AddItem(ctx, testProduct("p2", 499))

	second := NewCartStore(snaps, testClock(), silentLogger())
	second.Hydrate(ctx)

	lines := second.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, first.Lines()[0].ID, lines[0].ID)
	assert.Equal(t, "1498.00", second.Totals().Subtotal.String())
}

func TestCartStore_CouponSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	snaps := repo.NewMemoryStore()

	first := NewCartStore(snaps, testClock(), silentLogger())
	first.Hydrate(ctx)
	first.AddItem(ctx, testProduct("p1", 999))
	coupon, err := domain.NewCoupon("SAVE10", 10)
	require.NoError(t, err)
	first.ApplyCoupon(ctx, coupon)

	second := NewCartStore(snaps, testClock(), silentLogger())
	second.Hydrate(ctx)

	assert.Equal(t, "SAVE10", second.CouponCode())
	assert.Equal(t, int64(10), second.Totals().DiscountPercent)
	assert.Equal(t, "99.90", second.Totals().DiscountAmount.String())

	t.Run("rejection clears the persisted coupon", func(t *testing.T) {
		second.RejectCoupon(ctx, domain.ErrUnknownCoupon)

		third := NewCartStore(snaps, testClock(), silentLogger())
		third.Hydrate(ctx)
		assert.Empty(t, third.CouponCode())
		assert.Equal(t, int64(0), third.Totals().DiscountPercent)
	})

	t.Run("out-of-range persisted percentage is discarded", func(t *testing.T) {
		require.NoError(t, snaps.Save(ctx, &contracts.Snapshot{
			CouponCode:    "SAVE200",
			CouponPercent: 200,
		}))

		cart := NewCartStore(snaps, testClock(), silentLogger())
		cart.Hydrate(ctx)
		assert.Empty(t, cart.CouponCode())
	})
}

func TestCartStore_HydrationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	snaps := repo.NewMemoryStore()

	first := NewCartStore(snaps, testClock(), silentLogger())
	first.Hydrate(ctx)
	first.AddItem(ctx, testProduct("p1", 999))
	first.AddItem(ctx, testProduct("p2", 499))
	coupon, err := domain.NewCoupon("SAVE20", 20)
	require.NoError(t, err)
	first.ApplyCoupon(ctx, coupon)

	persisted, err := snaps.Load(ctx)
	require.NoError(t, err)

	// hydrate(); persist() must leave the snapshot unchanged
	second := NewCartStore(snaps, testClock(), silentLogger())
	second.Hydrate(ctx)
	second.Persist(ctx)

	again, err := snaps.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, persisted, again)
}

func TestCartStore_HydrateToleratesBadSnapshots(t *testing.T) {
	ctx := context.Background()

	t.Run("absent snapshot yields empty cart", func(t *testing.T) {
		cart := NewCartStore(repo.NewMemoryStore(), testClock(), silentLogger())
		cart.Hydrate(ctx)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("corrupt snapshot yields empty cart", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte("{definitely not json"), 0o644))

		cart := NewCartStore(repo.NewFileStore(path), testClock(), silentLogger())
		cart.Hydrate(ctx)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("unreadable storage yields empty cart", func(t *testing.T) {
		cart := NewCartStore(brokenStore{}, testClock(), silentLogger())
		cart.Hydrate(ctx)
		assert.True(t, cart.IsEmpty())
	})
}

func TestCartStore_DegradedMode(t *testing.T) {
	ctx := context.Background()
	cart := NewCartStore(brokenStore{}, testClock(), silentLogger())
	cart.Hydrate(ctx)

	assert.False(t, cart.Degraded())
	assert.NoError(t, cart.PersistenceError())

	// The cart keeps working in memory when writes fail.
	cart.AddItem(ctx, testProduct("p1", 999))
	assert.True(t, cart.Degraded())
	assert.ErrorIs(t, cart.PersistenceError(), domain.ErrPersistenceUnavailable)
	assert.Equal(t, 1, len(cart.Lines()))

	cart.Clear(ctx)
	assert.True(t, cart.IsEmpty())
}

func TestCartStore_ClearDeletesSnapshot(t *testing.T) {
	ctx := context.Background()
	snaps := repo.NewMemoryStore()
	cart := NewCartStore(snaps, testClock(), silentLogger())
	cart.Hydrate(ctx)
	cart.AddItem(ctx, testProduct("p1", 999))

	cart.Clear(ctx)

	snap, err := snaps.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
	assert.True(t, cart.IsEmpty())
}

func TestCartStore_CouponState(t *testing.T) {
	ctx := context.Background()
	cart := NewCartStore(repo.NewMemoryStore(), testClock(), silentLogger())

	coupon, err := domain.NewCoupon("SAVE20", 20)
	require.NoError(t, err)

	cart.ApplyCoupon(ctx, coupon)
	assert.Equal(t, "SAVE20", cart.CouponCode())
	assert.NoError(t, cart.CouponError())

	cart.RejectCoupon(ctx, domain.ErrUnknownCoupon)
	assert.Empty(t, cart.CouponCode())
	assert.ErrorIs(t, cart.CouponError(), domain.ErrUnknownCoupon)
	assert.Equal(t, int64(0), cart.Totals().DiscountPercent)
}
