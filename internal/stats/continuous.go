package stats

import (
	"math"

	"github.com/cockroachdb/errors"

	"statfn/internal/mathutil"
)

// PDFUniform is the density of Uniform(a, b): 1/(b-a) on [a, b], 0 elsewhere.
func PDFUniform(x, a, b float64) float64 {
	if a <= x && x <= b {
		return 1 / (b - a)
	}
	return 0
}

// CDFUniform is P(X <= x) for X ~ Uniform(a, b).
func CDFUniform(x, a, b float64) float64 {
	switch {
	case x < a:
		return 0
	case a <= x && x <= b:
		return (x - a) / (b - a)
	default:
		return 1
	}
}

// Exponential draws from Exponential(lambda) by inverse transform.
func (s Sampler) Exponential(lambda float64) float64 {
	u := s.Src.Float64()
	return -math.Log(u) / lambda
}

// PDFExponential is the density of Exponential(lambda): lambda*e^(-lambda*x) for x >= 0.
func PDFExponential(x, lambda float64) float64 {
	if x >= 0 {
		return lambda * math.Exp(-lambda*x)
	}
	return 0
}

// CDFExponential is P(X <= x) for X ~ Exponential(lambda).
func CDFExponential(x, lambda float64) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Exp(-lambda*x)
}

// Gamma draws from Gamma(n, lambda) as the sum of n Exponential(lambda)
// variates. Only integer shapes are supported; anything else returns
// ErrDomain without consuming the source.
func (s Sampler) Gamma(n, lambda float64) (float64, error) {
	if !mathutil.IsInt(n) {
		return 0, errors.Wrapf(ErrDomain, "n=%v", n)
	}
	x := 0.0
	for k := 0.0; k < n; k++ {
		x += s.Exponential(lambda)
	}
	return x, nil
}

// PDFGamma is the Gamma(n, lambda) density for integer shape n >= 1.
func PDFGamma(x, n, lambda float64) float64 {
	return math.Pow(lambda, n) / mathutil.Factorial(n-1) * math.Pow(x, n-1) * math.Exp(-lambda*x)
}
