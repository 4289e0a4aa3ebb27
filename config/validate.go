package config

import (
	"errors"
	"fmt"

	"github.com/etnz/inventory"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile:
		if c.Store.Path == "" {
			return errors.New("store.path is required")
		}
	case DriverRedis:
		if c.Store.RedisURL == "" {
			return errors.New("store.redis_url is required")
		}
		if c.Store.Key == "" {
			return errors.New("store.key is required")
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q, got %q", DriverFile, DriverRedis, c.Store.Driver)
	}

	if !inventory.KnownCurrency(c.Currency.Local) {
		return fmt.Errorf("currency.local %q is not a known currency", c.Currency.Local)
	}
	if !inventory.KnownCurrency(c.Currency.Foreign) {
		return fmt.Errorf("currency.foreign %q is not a known currency", c.Currency.Foreign)
	}
	if c.Currency.Local == c.Currency.Foreign {
		return fmt.Errorf("currency.local and currency.foreign must differ, both are %q", c.Currency.Local)
	}
	if c.Currency.Rate <= 0 {
		return fmt.Errorf("currency.rate must be > 0, got %v", c.Currency.Rate)
	}
	return nil
}
