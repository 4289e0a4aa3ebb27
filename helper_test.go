package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
)

// ARS is a helper for test to create pesos from const
func ARS(v float64) Money { return M(v, "ARS") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// newTestCalculator returns the default ARS/USD calculator at 1135.
func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	c, err := NewCalculator(decimal.NewFromInt(DefaultExchangeRate), "ARS", "USD")
	if err != nil {
		t.Fatalf("NewCalculator() error = %v", err)
	}
	return c
}
