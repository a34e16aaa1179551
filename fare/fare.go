package fare

import (
	"math"

	"github.com/Gobd/desikit"
)

// Invalid is returned by Parse and DistanceDifference for unusable input.
const Invalid = -1

// Range holds the cheapest and costliest of a set of fares.
type Range struct {
	Cheapest  float64 `json:"cheapest"`
	Costliest float64 `json:"costliest"`
}

// Parse reads a fare quoted as text. It parses the longest numeric prefix,
// so "152.50 rupees" yields 152.5. Input that is not a string, or that has
// no numeric prefix, yields Invalid.
func Parse(input any) float64 {
	s, ok := input.(string)
	if !ok {
		return Invalid
	}
	f, ok := desikit.ParseFloatPrefix(s)
	if !ok {
		return Invalid
	}
	return f
}

// Round formats amount with decimalPlaces digits after the point, rounding
// half away from zero on the exact stored value (see [desikit.FormatFixed]).
// amount must be a number and decimalPlaces a valid [DecimalPlaces];
// otherwise Round returns "".
func Round(amount, decimalPlaces any) string {
	a, ok := desikit.Number(amount)
	if !ok {
		return ""
	}
	places, ok := desikit.Number(decimalPlaces)
	if !ok || desikit.Validate(DecimalPlaces(places)) != nil {
		return ""
	}
	return desikit.FormatFixed(a, int(places))
}

// Surge multiplies baseFare by surgeMultiplier and rounds the product up to
// the next whole rupee, so the driver is never paid less than the exact
// fare. baseFare must be a valid [Fare] and surgeMultiplier a valid
// [Multiplier]; otherwise Surge returns 0.
func Surge(baseFare, surgeMultiplier any) float64 {
	base, ok := desikit.Number(baseFare)
	if !ok || desikit.Validate(Fare(base)) != nil {
		return 0
	}
	mult, ok := desikit.Number(surgeMultiplier)
	if !ok || desikit.Validate(Multiplier(mult)) != nil {
		return 0
	}
	return math.Ceil(base * mult)
}

// CheapestAndCostliest returns the smallest and largest of fares. Values that
// are not numbers, are negative, or are NaN are skipped. It returns nil when
// nothing is left.
func CheapestAndCostliest(fares ...any) *Range {
	var r *Range
	for _, v := range fares {
		f, ok := desikit.Number(v)
		if !ok || !(f >= 0) {
			continue
		}
		if r == nil {
			r = &Range{Cheapest: f, Costliest: f}
			continue
		}
		r.Cheapest = math.Min(r.Cheapest, f)
		r.Costliest = math.Max(r.Costliest, f)
	}
	return r
}

// DistanceDifference returns the distance between two kilometre markers,
// regardless of direction. Each marker may be a number or a string; only its
// leading integer counts (see [desikit.ParseIntPrefix]), so "12.9" is 12.
// It returns Invalid if either marker has no leading integer.
func DistanceDifference(from, to any) float64 {
	f, ok := desikit.ParseIntPrefix(from)
	if !ok {
		return Invalid
	}
	t, ok := desikit.ParseIntPrefix(to)
	if !ok {
		return Invalid
	}
	return math.Abs(t - f)
}
