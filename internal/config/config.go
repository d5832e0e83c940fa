package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the storefront settings, populated from STOREFRONT_*
// environment variables (an optional .env file is loaded first).
type Config struct {
	// SnapshotPath is the cart persistence slot. Empty selects the
	// in-memory store (no durability across runs).
	SnapshotPath string `envconfig:"SNAPSHOT_PATH" default:"cart.json"`

	// CheckoutWindow is the success acknowledgment delay before the
	// cart is cleared.
	CheckoutWindow time.Duration `envconfig:"CHECKOUT_WINDOW" default:"3s"`

	// WhatsAppNumber is the order handoff target in international
	// format without "+". Empty routes orders to the structured log
	// instead.
	WhatsAppNumber string `envconfig:"WHATSAPP_NUMBER" default:"917865089698"`

	// CouponFile optionally overrides the built-in coupon table with a
	// JSON code-to-percent mapping.
	CouponFile string `envconfig:"COUPON_FILE"`

	// LogLevel is a logrus level name.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("storefront", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}
	return &cfg, nil
}
