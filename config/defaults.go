package config

import "strings"

// Supported store drivers.
const (
	DriverFile  = "file"
	DriverRedis = "redis"
)

// Default values for optional configuration fields.
const (
	DefaultFile    = "inv.yaml"
	DefaultDriver  = DriverFile
	DefaultPath    = "products.json"
	DefaultKey     = "products"
	DefaultLocal   = "ARS"
	DefaultForeign = "USD"
	DefaultRate    = 1135
)

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Store.Driver == "" {
		c.Store.Driver = DefaultDriver
		if c.Store.RedisURL != "" {
			c.Store.Driver = DriverRedis
		}
	}
	c.Store.Driver = strings.ToLower(c.Store.Driver)
	if c.Store.Path == "" {
		c.Store.Path = DefaultPath
	}
	if c.Store.Key == "" {
		c.Store.Key = DefaultKey
	}

	if c.Currency.Local == "" {
		c.Currency.Local = DefaultLocal
	}
	if c.Currency.Foreign == "" {
		c.Currency.Foreign = DefaultForeign
	}
	c.Currency.Local = strings.ToUpper(c.Currency.Local)
	c.Currency.Foreign = strings.ToUpper(c.Currency.Foreign)
	if c.Currency.Rate == 0 {
		c.Currency.Rate = DefaultRate
	}
}
