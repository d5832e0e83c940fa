package repo

import (
	"context"

	"github.com/light-bringer/cart-service/internal/app/cart/contracts"
)

// MemoryStore is an in-process snapshot store. Used in tests and as the
// persistence slot when no file path is configured; contents do not
// survive the process.
type MemoryStore struct {
	snap *contracts.Snapshot
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored snapshot, or (nil, nil) when none
// has been saved.
func (s *MemoryStore) Load(_ context.Context) (*contracts.Snapshot, error) {
	if s.snap == nil {
		return nil, nil
	}
	return copySnapshot(s.snap), nil
}

// Save replaces the stored snapshot.
func (s *MemoryStore) Save(_ context.Context, snap *contracts.Snapshot) error {
	s.snap = copySnapshot(snap)
	return nil
}

// Delete discards the stored snapshot.
func (s *MemoryStore) Delete(_ context.Context) error {
	s.snap = nil
	return nil
}

func copySnapshot(snap *contracts.Snapshot) *contracts.Snapshot {
	out := &contracts.Snapshot{
		Lines:         make([]contracts.LineRecord, len(snap.Lines)),
		CouponCode:    snap.CouponCode,
		CouponPercent: snap.CouponPercent,
	}
	copy(out.Lines, snap.Lines)
	return out
}
