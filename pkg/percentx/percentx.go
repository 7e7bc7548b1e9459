package percentx

import "github.com/shopspring/decimal"

// Change returns the percentage change from prev to curr. The second
// return value is false when prev is zero and no percentage is defined.
func Change(prev, curr float64) (float64, bool) {
	if prev == 0 {
		return 0, false
	}
	return (curr - prev) / prev * 100, true
}

// Fixed renders a percentage value with a fixed number of decimal places,
// e.g. Fixed(6.0, 2) == "6.00%".
func Fixed(pct float64, places int32) string {
	return decimal.NewFromFloat(pct).StringFixed(places) + "%"
}

// FromRate renders a raw rate (e.g. a funding rate of 0.0001) as a
// percentage with a fixed number of decimal places.
func FromRate(rate float64, places int32) string {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}
