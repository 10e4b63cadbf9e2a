package numfn

import (
	"cmp"
	"math"
	"math/rand/v2"

	"github.com/govalues/decimal"
)

// Clamp bounds n to the closed interval [lower, upper].
func Clamp[T cmp.Ordered](n, lower, upper T) T {
	if n < lower {
		return lower
	}
	if n > upper {
		return upper
	}
	return n
}

// RandomInt returns a uniformly distributed integer in
// [ceil(min), floor(max)] inclusive. An empty or inverted interval
// collapses to ceil(min).
func RandomInt(min, max float64) int {
	lo := int(math.Ceil(min))
	hi := int(math.Floor(max))
	if hi <= lo {
		return lo
	}
	return lo + rand.IntN(hi-lo+1)
}

// Mean returns the arithmetic mean of values, accumulated in decimal
// arithmetic so that long inputs do not drift. Empty input yields NaN.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum, ok := decimalSum(values)
	if !ok {
		return math.NaN()
	}
	count, err := decimal.New(int64(len(values)), 0)
	if err != nil {
		return math.NaN()
	}
	mean, err := sum.Quo(count)
	if err != nil {
		return math.NaN()
	}
	f, ok := mean.Float64()
	if !ok {
		return math.NaN()
	}
	return f
}

// Sum adds values in decimal arithmetic. Empty input yields 0.
func Sum(values []float64) float64 {
	sum, ok := decimalSum(values)
	if !ok {
		return math.NaN()
	}
	f, ok := sum.Float64()
	if !ok {
		return math.NaN()
	}
	return f
}

func decimalSum(values []float64) (decimal.Decimal, bool) {
	var sum decimal.Decimal // zero value is 0
	for _, v := range values {
		d, err := decimal.NewFromFloat64(v)
		if err != nil {
			return sum, false
		}
		sum, err = sum.Add(d)
		if err != nil {
			return sum, false
		}
	}
	return sum, true
}

// Round rounds n half away from zero at the given decimal precision.
func Round(n float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(n*factor) / factor
}
