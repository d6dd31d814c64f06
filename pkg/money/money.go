package money

import "github.com/shopspring/decimal"

// Round2 rounds an amount to two decimal places, the precision the fiscal
// API expects on every monetary field.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Sum adds the given amounts and rounds the result to two decimal places.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return Round2(total)
}

// IsZero reports whether the amount rounds to zero at two decimal places.
func IsZero(d decimal.Decimal) bool {
	return Round2(d).IsZero()
}
