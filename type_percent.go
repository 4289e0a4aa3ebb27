package inventory

import "github.com/shopspring/decimal"

// NotAvailable is how an undefined Percent prints.
const NotAvailable = "N/A"

// Percent is a percentage that may be undefined, as a ratio over a zero base is.
// The zero value is undefined.
type Percent struct {
	value   decimal.Decimal
	defined bool
}

// P returns a defined Percent, P(12.5) prints as "12.50%".
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value), defined: true}
}

// ratio returns num/den as a percentage, undefined when den is zero.
func ratio(num, den decimal.Decimal) Percent {
	if den.IsZero() {
		return Percent{}
	}
	return Percent{value: num.Div(den).Mul(decimal.NewFromInt(100)), defined: true}
}

func (p Percent) IsDefined() bool          { return p.defined }
func (p Percent) Decimal() decimal.Decimal { return p.value }

func (p Percent) Equal(q Percent) bool {
	if !p.defined || !q.defined {
		return p.defined == q.defined
	}
	// it has to be compared with some precision
	const precision = 0.0001
	return p.value.Sub(q.value).Abs().LessThan(decimal.NewFromFloat(precision))
}

func (p Percent) String() string {
	if !p.defined {
		return NotAvailable
	}
	return p.value.StringFixed(2) + "%"
}

func (p Percent) SignedString() string {
	if !p.defined {
		return NotAvailable
	}
	if p.value.Round(2).IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}
