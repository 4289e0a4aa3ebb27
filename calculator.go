package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultExchangeRate is the number of ARS for one USD.
const DefaultExchangeRate = 1135

// Figures are the financial figures derived from a single product.
type Figures struct {
	Purchase              Money
	Sale                  Money
	Shipping              Money
	TotalLocal            Money // sale price plus shipping cost
	ProfitWithoutShipping Money
	ProfitWithShipping    Money
	ProfitForeign         Money   // ProfitWithShipping in the foreign currency
	PercentageProfit      Percent // ProfitWithShipping over the purchase price, undefined for a free purchase
}

// Totals are the figures aggregated over a list of products.
type Totals struct {
	Count              int
	TotalProfitLocal   Money
	TotalProfitForeign Money
	GrandTotalLocal    Money
}

// Calculator derives financial figures from products. It has no state but
// its configuration: the currencies and the fixed exchange rate between them.
//
// Figures are exact: rounding only happens when Money is formatted.
type Calculator struct {
	rate    decimal.Decimal // local units for one foreign unit
	local   string
	foreign string
}

// NewCalculator returns a calculator converting with rate local units for one
// foreign unit.
func NewCalculator(rate decimal.Decimal, local, foreign string) (*Calculator, error) {
	if !rate.IsPositive() {
		return nil, fmt.Errorf("exchange rate must be positive, got %s", rate)
	}
	for _, code := range []string{local, foreign} {
		if !KnownCurrency(code) {
			return nil, fmt.Errorf("unknown currency %q", code)
		}
	}
	if local == foreign {
		return nil, fmt.Errorf("local and foreign currencies are both %q", local)
	}
	return &Calculator{rate: rate, local: local, foreign: foreign}, nil
}

func (c *Calculator) Rate() decimal.Decimal { return c.rate }
func (c *Calculator) Local() string         { return c.local }
func (c *Calculator) Foreign() string       { return c.foreign }

// toForeign converts a local amount.
func (c *Calculator) toForeign(m Money) Money {
	return M(m.value.Div(c.rate), c.foreign)
}

// Calculate returns the figures of a single product.
func (c *Calculator) Calculate(p Product) Figures {
	purchase := M(p.PurchasePrice, c.local)
	sale := M(p.SalePrice, c.local)
	shipping := M(p.ShippingCost, c.local)

	profitWithoutShipping := sale.Sub(purchase)
	profitWithShipping := profitWithoutShipping.Add(shipping)

	return Figures{
		Purchase:              purchase,
		Sale:                  sale,
		Shipping:              shipping,
		TotalLocal:            sale.Add(shipping),
		ProfitWithoutShipping: profitWithoutShipping,
		ProfitWithShipping:    profitWithShipping,
		ProfitForeign:         c.toForeign(profitWithShipping),
		PercentageProfit:      ratio(profitWithShipping.value, p.PurchasePrice),
	}
}

// Aggregate folds the figures of all products. The result does not depend on
// the products order.
func (c *Calculator) Aggregate(products []Product) Totals {
	profit := M(0, c.local)
	total := M(0, c.local)
	for _, p := range products {
		f := c.Calculate(p)
		profit = profit.Add(f.ProfitWithShipping)
		total = total.Add(f.TotalLocal)
	}
	return Totals{
		Count:              len(products),
		TotalProfitLocal:   profit,
		TotalProfitForeign: c.toForeign(profit),
		GrandTotalLocal:    total,
	}
}

// Convert converts a positive amount into the currency to, which is either
// the local or the foreign currency (case insensitive).
func (c *Calculator) Convert(amount decimal.Decimal, to string) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, ErrInvalidAmount
	}
	switch strings.ToUpper(to) {
	case c.local:
		return M(amount.Mul(c.rate), c.local), nil
	case c.foreign:
		return c.toForeign(M(amount, c.local)), nil
	default:
		return Money{}, fmt.Errorf("cannot convert to %q, only %s and %s are supported", to, c.local, c.foreign)
	}
}
