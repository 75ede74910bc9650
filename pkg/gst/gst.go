// Package gst implements the GST (Goods and Services Tax, India) arithmetic
// shared by every order-line computation: tax amount and tax-inclusive total
// from a base amount and a percentage. Pure functions, no rounding beyond
// what callers request at display/persist boundaries.
package gst

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Compute returns (taxAmount, total) for a base amount and a GST percentage.
// taxAmount = base * percent / 100; total = base + taxAmount. Full decimal
// precision is kept; callers round with Round2 when persisting or displaying.
func Compute(base, percent decimal.Decimal) (taxAmount, total decimal.Decimal) {
	taxAmount = base.Mul(percent).Div(hundred)
	total = base.Add(taxAmount)
	return taxAmount, total
}

// InclusivePrice derives the tax-inclusive price for a unit rate, rounded to
// currency precision. This is the snapshot stored on items and order lines;
// it is computed once and never re-derived later.
func InclusivePrice(rate, percent decimal.Decimal) decimal.Decimal {
	_, total := Compute(rate, percent)
	return Round2(total)
}

// Round2 rounds to 2 decimal places (currency precision, half away from zero).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ValidPercent reports whether a GST percentage is within [0, 100].
func ValidPercent(percent decimal.Decimal) bool {
	return !percent.IsNegative() && !percent.GreaterThan(hundred)
}
