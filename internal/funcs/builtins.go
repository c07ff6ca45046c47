package funcs

import "statfn/internal/stats"

func pure(f func(a args) float64) impl {
	return func(_ stats.Sampler, a args) (float64, error) { return f(a), nil }
}

func random(f func(s stats.Sampler, a args) float64) impl {
	return func(s stats.Sampler, a args) (float64, error) { return f(s, a), nil }
}

func fn(name, doc string, params []Kind, f impl) entry {
	return entry{spec: Spec{Name: name, Params: params, Returns: Number, Doc: doc}, fn: f}
}

var (
	n1  = []Kind{Number}
	n2  = []Kind{Number, Number}
	n3  = []Kind{Number, Number, Number}
	l1  = []Kind{List}
	l2  = []Kind{List, List}
	ln2 = []Kind{List, Number, Number}
)

var builtins = []entry{
	// Descriptive statistics.
	fn("sum", "Sum of a list of numbers", l1, pure(func(a args) float64 {
		return stats.Sum(a.list(0))
	})),
	fn("mean", "Mean of a list of numbers; 0 for an empty list", l1, pure(func(a args) float64 {
		return stats.Mean(a.list(0))
	})),
	fn("variance", "Sample variance (n-1 divisor)", l1, pure(func(a args) float64 {
		return stats.Variance(a.list(0))
	})),
	fn("standardDev", "Sample standard deviation", l1, pure(func(a args) float64 {
		return stats.StandardDev(a.list(0))
	})),

	// Normal.
	fn("randomNormal", "Random value from Normal(mu, sigma)", n2, random(func(s stats.Sampler, a args) float64 {
		return s.Normal(a.num(0), a.num(1))
	})),
	fn("pdfNormal", "Normal(mu, sigma) density at x", n3, pure(func(a args) float64 {
		return stats.PDFNormal(a.num(0), a.num(1), a.num(2))
	})),
	fn("cdfNormal", "Standard normal cdf at z (valid for z >= 0)", n1, pure(func(a args) float64 {
		return stats.CDFNormal(a.num(0))
	})),

	// Discrete.
	fn("randomBernoulli", "Random value from Bernoulli(p)", n1, random(func(s stats.Sampler, a args) float64 {
		return s.Bernoulli(a.num(0))
	})),
	fn("randomBinomial", "Random value from Binomial(n, p)", n2, random(func(s stats.Sampler, a args) float64 {
		return s.Binomial(a.num(0), a.num(1))
	})),
	fn("pmfBinomial", "Binomial(n, p) pmf at x", n3, pure(func(a args) float64 {
		return stats.PMFBinomial(a.num(0), a.num(1), a.num(2))
	})),
	fn("randomGeometric", "Random value from Geometric(p)", n1, random(func(s stats.Sampler, a args) float64 {
		return s.Geometric(a.num(0))
	})),
	fn("pmfGeometric", "Geometric(p) pmf at x", n2, pure(func(a args) float64 {
		return stats.PMFGeometric(a.num(0), a.num(1))
	})),
	fn("cdfGeometric", "Geometric(p) cdf at x", n2, pure(func(a args) float64 {
		return stats.CDFGeometric(a.num(0), a.num(1))
	})),
	fn("randomPoisson", "Random value from Poisson(lambda)", n1, random(func(s stats.Sampler, a args) float64 {
		return s.Poisson(a.num(0))
	})),
	fn("pmfPoisson", "Poisson(lambda) pmf at x", n2, pure(func(a args) float64 {
		return stats.PMFPoisson(a.num(0), a.num(1))
	})),

	// Continuous.
	fn("pdfUniform", "Uniform(a, b) density at x", n3, pure(func(a args) float64 {
		return stats.PDFUniform(a.num(0), a.num(1), a.num(2))
	})),
	fn("cdfUniform", "Uniform(a, b) cdf at x", n3, pure(func(a args) float64 {
		return stats.CDFUniform(a.num(0), a.num(1), a.num(2))
	})),
	fn("randomExponential", "Random value from Exponential(lambda)", n1, random(func(s stats.Sampler, a args) float64 {
		return s.Exponential(a.num(0))
	})),
	fn("pdfExponential", "Exponential(lambda) density at x", n2, pure(func(a args) float64 {
		return stats.PDFExponential(a.num(0), a.num(1))
	})),
	fn("cdfExponential", "Exponential(lambda) cdf at x", n2, pure(func(a args) float64 {
		return stats.CDFExponential(a.num(0), a.num(1))
	})),
	fn("randomGamma", "Random value from Gamma(n, lambda), integer n only", n2, func(s stats.Sampler, a args) (float64, error) {
		return s.Gamma(a.num(0), a.num(1))
	}),
	fn("pdfGamma", "Gamma(n, lambda) density at x", n3, pure(func(a args) float64 {
		return stats.PDFGamma(a.num(0), a.num(1), a.num(2))
	})),

	// Regression and testing.
	fn("regressionAlpha", "Intercept of the least squares line through (x, y)", l2, func(_ stats.Sampler, a args) (float64, error) {
		return stats.RegressionAlpha(a.list(0), a.list(1))
	}),
	fn("regressionBeta", "Slope of the least squares line through (x, y)", l2, func(_ stats.Sampler, a args) (float64, error) {
		return stats.RegressionBeta(a.list(0), a.list(1))
	}),
	fn("zTest", "Normal cdf of the z statistic of a sample against mean mu and known variance", ln2, pure(func(a args) float64 {
		return stats.ZTest(a.list(0), a.num(1), a.num(2))
	})),
}
