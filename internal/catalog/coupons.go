package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// CouponTable is the static closed mapping of coupon code to discount
// percentage. Codes are stored normalized (upper-case); lookups expect
// the caller to normalize.
type CouponTable struct {
	codes map[string]int64
}

// DefaultCoupons returns the built-in coupon table.
func DefaultCoupons() *CouponTable {
	return &CouponTable{codes: map[string]int64{
		"SAVE10": 10,
		"SAVE20": 20,
		"SAVE50": 50,
	}}
}

// LoadCoupons reads a code-to-percent mapping from a JSON file,
// normalizing codes to upper-case. Percentages outside [0,100] are
// rejected.
func LoadCoupons(path string) (*CouponTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read coupon table %s", path)
	}

	var raw map[string]int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "decode coupon table %s", path)
	}

	codes := make(map[string]int64, len(raw))
	for code, percent := range raw {
		if percent < 0 || percent > 100 {
			return nil, errors.Errorf("coupon %s: percentage %d out of range", code, percent)
		}
		codes[strings.ToUpper(code)] = percent
	}
	return &CouponTable{codes: codes}, nil
}

// Lookup returns the discount percentage for a normalized code.
func (t *CouponTable) Lookup(code string) (int64, bool) {
	percent, ok := t.codes[code]
	return percent, ok
}

// Size returns the number of configured codes.
func (t *CouponTable) Size() int {
	return len(t.codes)
}
