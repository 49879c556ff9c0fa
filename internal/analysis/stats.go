// ABOUTME: Scalar statistics over spectrum slices
// ABOUTME: Mean, variance, RMS, and Pearson correlation with empty/zero-variance guards
package analysis

import "math"

// Mean returns the arithmetic mean, or 0 for an empty slice
func Mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// Variance returns the population variance, or 0 for an empty slice
func Variance(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	m := Mean(v)
	var sum float64
	for _, x := range v {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(v))
}

// RMS returns the root mean square, or 0 for an empty slice
func RMS(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(v)))
}

// Pearson returns the correlation of two equal-length slices. Mismatched
// lengths, empty input, or zero variance on either side yield 0 rather
// than NaN.
func Pearson(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	ma, mb := Mean(a), Mean(b)
	var cov, va, vb float64
	for i := range a {
		da := a[i] - ma
		db := b[i] - mb
		cov += da * db
		va += da * da
		vb += db * db
	}
	if va == 0 || vb == 0 {
		return 0
	}
	return cov / math.Sqrt(va*vb)
}
