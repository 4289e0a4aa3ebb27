// Package config holds the settings of the inv command: where the products
// are stored and how amounts are converted between the two currencies.
package config

import (
	"github.com/shopspring/decimal"
)

// Config is the root configuration, as read from inv.yaml.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Currency CurrencyConfig `yaml:"currency"`
}

// StoreConfig selects the durable slot holding the products.
type StoreConfig struct {
	Driver   string `yaml:"driver"`    // "file" or "redis"
	Path     string `yaml:"path"`      // file driver
	RedisURL string `yaml:"redis_url"` // redis driver
	Key      string `yaml:"key"`       // redis driver
}

// CurrencyConfig configures the local and foreign currencies.
type CurrencyConfig struct {
	Local   string  `yaml:"local"`
	Foreign string  `yaml:"foreign"`
	Rate    float64 `yaml:"rate"` // local units for one foreign unit
}

// ExchangeRate returns the rate as an exact decimal.
func (c *Config) ExchangeRate() decimal.Decimal {
	return decimal.NewFromFloat(c.Currency.Rate)
}
