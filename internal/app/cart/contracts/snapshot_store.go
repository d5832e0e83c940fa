package contracts

import (
	"context"
	"time"
)

// LineRecord is the persisted form of a cart line.
type LineRecord struct {
	LineID     string    `json:"line_id"`
	ProductID  string    `json:"product_id"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"price_cents"`
	AddedAt    time.Time `json:"added_at"`
}

// Snapshot is the persisted cart state: the ordered line records plus
// the applied coupon, so a discount applied in one session is still in
// effect when the next session checks out. It must round-trip exactly:
// hydrating a persisted snapshot reproduces the same lines in the same
// order with the same totals.
//
// The coupon percent is stored alongside the code; the snapshot is the
// session's own record of what was granted, not a fresh lookup against
// a possibly-changed coupon table.
type Snapshot struct {
	Lines         []LineRecord `json:"lines"`
	CouponCode    string       `json:"coupon_code,omitempty"`
	CouponPercent int64        `json:"coupon_percent,omitempty"`
}

// SnapshotStore is the persistence slot for cart contents: a local,
// single-session key-value location that survives restarts. An absent
// snapshot is not an error; Load returns (nil, nil).
type SnapshotStore interface {
	// Load reads the persisted snapshot, if any
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the persisted snapshot
	Save(ctx context.Context, snap *Snapshot) error

	// Delete removes the persisted snapshot
	Delete(ctx context.Context) error
}
