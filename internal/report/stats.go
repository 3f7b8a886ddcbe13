package report

import (
	"fmt"
	"math"
)

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatPercent renders a ratio-out-of-100 as "12.34%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Mean returns the arithmetic mean; 0 for an empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PopStdDev returns the population standard deviation.
func PopStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

// Pearson computes the population Pearson correlation coefficient:
//
//	r = (E[XY] − E[X]·E[Y]) / (σ_X · σ_Y)
//
// ok is false when either variable has zero variance (or fewer than two
// points), where r is undefined.
func Pearson(xs, ys []float64) (r float64, ok bool) {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return 0, false
	}

	var sumXY float64
	for i := range xs {
		sumXY += xs[i] * ys[i]
	}
	cov := sumXY/float64(n) - Mean(xs)*Mean(ys)

	sx := PopStdDev(xs)
	sy := PopStdDev(ys)
	if sx == 0 || sy == 0 {
		return 0, false
	}
	return cov / (sx * sy), true
}
