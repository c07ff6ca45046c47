package mathutil

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Largest n for which n! is finite in float64.
const maxFactorial = 170

// Largest n for which combin.Binomial stays inside int without overflow.
const maxExactBinomial = 50

// IsInt reports whether x has no fractional part.
func IsInt(x float64) bool {
	return x == math.Floor(x)
}

// Factorial returns n! for non-negative integers and Gamma(n+1) otherwise.
func Factorial(n float64) float64 {
	if IsInt(n) && n >= 0 && n <= maxFactorial {
		f := 1.0
		for i := 2.0; i <= n; i++ {
			f *= i
		}
		return f
	}
	return math.Gamma(n + 1)
}

// Combinations returns the number of ways to choose k items out of n.
// Values of k outside [0, n] give 0.
func Combinations(n, k float64) float64 {
	if k < 0 || k > n {
		return 0
	}
	if IsInt(n) && IsInt(k) && n <= maxExactBinomial {
		return float64(combin.Binomial(int(n), int(k)))
	}
	return combin.GeneralizedBinomial(n, k)
}
