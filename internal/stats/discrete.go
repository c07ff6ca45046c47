package stats

import (
	"math"

	"statfn/internal/mathutil"
)

// Above this rate Poisson splits itself in two halves, since e^-lambda
// underflows the search loop.
const poissonSplit = 500

// Bernoulli returns 1 with probability p and 0 otherwise.
// The draw counts as a success when u >= 1-p.
func (s Sampler) Bernoulli(p float64) float64 {
	u := s.Src.Float64()
	if u >= 1-p {
		return 1
	}
	return 0
}

// Binomial counts successes over n Bernoulli(p) trials. A fractional n is
// rounded up to the next whole number of trials.
func (s Sampler) Binomial(n, p float64) float64 {
	x := 0.0
	for k := 0.0; k < n; k++ {
		x += s.Bernoulli(p)
	}
	return x
}

// PMFBinomial is P(X = x) for X ~ Binomial(n, p).
func PMFBinomial(x, n, p float64) float64 {
	return mathutil.Combinations(n, x) * math.Pow(p, x) * math.Pow(1-p, n-x)
}

// Geometric draws the number of failures before the first success by
// inverse transform.
func (s Sampler) Geometric(p float64) float64 {
	u := s.Src.Float64()
	z := math.Log(1-u) / math.Log(1-p)
	// z < 0 only shows up through rounding at the edges of the
	// domain; it is rounded toward zero.
	// TODO: confirm whether a single Floor is enough here.
	if z >= 0 {
		return math.Floor(z)
	}
	return math.Ceil(z)
}

// PMFGeometric is (1-p)^(x-1) * p.
func PMFGeometric(x, p float64) float64 {
	return math.Pow(1-p, x-1) * p
}

// CDFGeometric is 1-(1-p)^x.
func CDFGeometric(x, p float64) float64 {
	return 1 - math.Pow(1-p, x)
}

// Poisson draws from Poisson(lambda) with Knuth's sequential search.
// Rates above 500 are drawn as the sum of two Poisson(lambda/2) variates.
func (s Sampler) Poisson(lambda float64) float64 {
	if lambda > poissonSplit {
		return s.Poisson(lambda/2) + s.Poisson(lambda/2)
	}

	k := 0.0
	u := s.Src.Float64()
	p := math.Exp(-lambda)
	u -= p
	for u > 0 {
		k++
		p *= lambda / k
		u -= p
	}
	return k
}

// PMFPoisson is P(X = x) for X ~ Poisson(lambda).
func PMFPoisson(x, lambda float64) float64 {
	return math.Pow(lambda, x) / mathutil.Factorial(x) * math.Exp(-lambda)
}
