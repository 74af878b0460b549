// Package money holds decimal helpers shared by aggregation and rendering.
package money

import (
	"github.com/shopspring/decimal"
)

// Round rounds v to places decimal digits, half away from zero, and renders it
// with exactly that many digits. Round(1.005, 2) is "1.01".
func Round(v decimal.Decimal, places int32) string {
	return v.Round(places).StringFixed(places)
}

// Fixed2 renders v with two decimal places, the display precision used for
// prices, quantities and sums.
func Fixed2(v decimal.Decimal) string {
	return Round(v, 2)
}

// Sum adds up values. The zero value is returned for an empty slice.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
