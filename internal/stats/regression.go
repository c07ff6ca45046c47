package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Regression is a fitted line y = Alpha + Beta*x.
type Regression struct {
	Alpha float64
	Beta  float64
}

// Regress fits y = alpha + beta*x by ordinary least squares.
//
// A constant x makes Sxx zero; the result then carries whatever the
// division produces (±Inf or NaN). Values of y beyond len(x) are used for
// the mean of y but not for Sxy.
func Regress(x, y Sample) (Regression, error) {
	if len(y) < len(x) {
		return Regression{}, errors.Wrapf(ErrLengthMismatch, "len(x)=%d len(y)=%d", len(x), len(y))
	}
	meanx := Mean(x)
	meany := Mean(y)

	var sxx, sxy float64
	for i := range x {
		d := x[i] - meanx
		c := y[i] - meany
		sxx += d * d
		sxy += d * c
	}

	beta := sxy / sxx
	return Regression{Alpha: meany - beta*meanx, Beta: beta}, nil
}

// RegressionAlpha returns the intercept of Regress(x, y).
func RegressionAlpha(x, y Sample) (float64, error) {
	r, err := Regress(x, y)
	return r.Alpha, err
}

// RegressionBeta returns the slope of Regress(x, y).
func RegressionBeta(x, y Sample) (float64, error) {
	r, err := Regress(x, y)
	return r.Beta, err
}

// ZTest standardizes the sample mean against a population with mean mu
// and known variance, and returns CDFNormal of the result: the left-tail
// probability at the observed z.
func ZTest(sample Sample, mu, variance float64) float64 {
	n := float64(len(sample))
	z := (Mean(sample) - mu) / math.Sqrt(variance/n)
	return CDFNormal(z)
}
