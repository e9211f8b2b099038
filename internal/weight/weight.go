// Package weight holds the gram arithmetic for issued and returned material.
//
// Every weight is fixed to three decimals where it enters the system; the helpers
// here work on decimal values so that sums of already rounded weights stay exact.
package weight

import "github.com/shopspring/decimal"

const (
	weightPlaces  = 3
	percentPlaces = 2
)

var hundred = decimal.NewFromInt(100)

// Round3 fixes a gram value to three decimals, rounding half away from zero.
func Round3(v float64) float64 {
	return decimal.NewFromFloat(v).Round(weightPlaces).InexactFloat64()
}

// Round2 fixes a percentage to two decimals for summary output.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(percentPlaces).InexactFloat64()
}

// Loss is issued minus returned. The caller guarantees 0 <= returned <= issued.
func Loss(issued, returned float64) float64 {
	return decimal.NewFromFloat(issued).
		Sub(decimal.NewFromFloat(returned)).
		Round(weightPlaces).
		InexactFloat64()
}

// LossPercentage is loss relative to base, or 0 when base is not positive.
func LossPercentage(loss, base float64) float64 {
	b := decimal.NewFromFloat(base)
	if !b.IsPositive() {
		return 0
	}
	return decimal.NewFromFloat(loss).Div(b).Mul(hundred).InexactFloat64()
}

// Sum adds weights without accumulating binary rounding error.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(weightPlaces).InexactFloat64()
}

// Accumulator sums weights incrementally, e.g. while grouping report rows.
type Accumulator struct {
	total decimal.Decimal
}

func (a *Accumulator) Add(v float64) {
	a.total = a.total.Add(decimal.NewFromFloat(v))
}

func (a *Accumulator) Value() float64 {
	return a.total.Round(weightPlaces).InexactFloat64()
}
