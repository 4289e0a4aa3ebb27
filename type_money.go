package inventory

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
//
// The value is kept exact, rounding to the currency fraction only happens in
// String.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the money formatted with the currency conventions, e.g.
// "$1,234.50" in USD or "$1.234,50" in ARS.
func (m Money) String() string {
	cur := m.currency()
	f := cur.Formatter()
	minor := m.value.Round(int32(f.Fraction)).Shift(int32(f.Fraction))
	return format(f, minor)
}

// format lays out an amount of minor units like f.Format does, without the
// int64 limit.
func format(f *money.Formatter, minor decimal.Decimal) string {
	digits := minor.Abs().StringFixed(0)
	if len(digits) <= f.Fraction {
		digits = strings.Repeat("0", f.Fraction-len(digits)+1) + digits
	}
	whole, frac := digits[:len(digits)-f.Fraction], digits[len(digits)-f.Fraction:]

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(f.Thousand)
		}
		b.WriteRune(d)
	}
	if f.Fraction > 0 {
		b.WriteString(f.Decimal)
		b.WriteString(frac)
	}

	s := strings.Replace(f.Template, "1", b.String(), 1)
	s = strings.Replace(s, "$", f.Grapheme, 1)
	if minor.IsNegative() {
		s = "-" + s
	}
	return s
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// KnownCurrency reports whether code is an ISO 4217 code with formatting rules.
func KnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
