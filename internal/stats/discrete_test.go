package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"statfn/internal/rng"
)

// countingSource wraps a Source and records how many draws were taken.
type countingSource struct {
	src   rng.Source
	draws int
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.src.Float64()
}

func TestBernoulliBoundary(t *testing.T) {
	require.Equal(t, 1.0, NewSampler(rng.Sequence(0.5)).Bernoulli(0.5))
	require.Equal(t, 0.0, NewSampler(rng.Sequence(0.49)).Bernoulli(0.5))
	require.Equal(t, 1.0, NewSampler(rng.Sequence(0)).Bernoulli(1))
	require.Equal(t, 0.0, NewSampler(rng.Sequence(0.999)).Bernoulli(0))
}

func TestBinomialCountsTrials(t *testing.T) {
	s := NewSampler(rng.Sequence(0.9, 0.1, 0.9))
	require.Equal(t, 2.0, s.Binomial(3, 0.5))

	c := &countingSource{src: rng.Sequence(0.9)}
	require.Equal(t, 3.0, NewSampler(c).Binomial(2.5, 0.5))
	require.Equal(t, 3, c.draws)

	require.Equal(t, 0.0, NewSampler(rng.Sequence(0.9)).Binomial(0, 0.5))
}

func TestPMFBinomialMatchesReference(t *testing.T) {
	total := 0.0
	for k := 0.0; k <= 10; k++ {
		want := distuv.Binomial{N: 10, P: 0.3}.Prob(k)
		got := PMFBinomial(k, 10, 0.3)
		require.InDelta(t, want, got, 1e-12, "k=%v", k)
		total += got
	}
	require.InDelta(t, 1.0, total, 1e-12)
	require.Equal(t, 0.0, PMFBinomial(11, 10, 0.3))
}

func TestGeometricRounding(t *testing.T) {
	// ln(0.2)/ln(0.5) = 2.32...
	require.Equal(t, 2.0, NewSampler(rng.Sequence(0.8)).Geometric(0.5))
	// ln(0.4)/ln(2) = -1.32... rounds toward zero.
	require.Equal(t, -1.0, NewSampler(rng.Sequence(0.6)).Geometric(-1))
}

func TestGeometricPMFAndCDFAgree(t *testing.T) {
	for _, p := range []float64{0.1, 0.35, 0.5, 0.9} {
		acc := 0.0
		for x := 1.0; x <= 12; x++ {
			acc += PMFGeometric(x, p)
			require.InDelta(t, CDFGeometric(x, p), acc, 1e-12, "p=%v x=%v", p, x)
		}
	}
}

func TestGeometricMean(t *testing.T) {
	s := NewSampler(rng.New(5))
	v := make(Sample, 20000)
	for i := range v {
		v[i] = s.Geometric(0.25)
	}
	// Failures before the first success: (1-p)/p.
	require.InDelta(t, 3.0, Mean(v), 0.15)
}

func TestPoissonPinned(t *testing.T) {
	// e^-1 = 0.3679
	require.Equal(t, 0.0, NewSampler(rng.Sequence(0.2)).Poisson(1))
	require.Equal(t, 1.0, NewSampler(rng.Sequence(0.5)).Poisson(1))
	require.Equal(t, 2.0, NewSampler(rng.Sequence(0.8)).Poisson(1))
}

func TestPoissonMean(t *testing.T) {
	s := NewSampler(rng.New(1))
	v := make(Sample, 10000)
	for i := range v {
		v[i] = s.Poisson(5)
	}
	require.InEpsilon(t, 5.0, Mean(v), 0.03)
}

func TestPoissonLargeRateSplits(t *testing.T) {
	c := &countingSource{src: rng.New(3)}
	s := NewSampler(c)
	s.Poisson(500)
	require.Equal(t, 1, c.draws)

	c.draws = 0
	s.Poisson(1000)
	require.Equal(t, 2, c.draws)

	c.draws = 0
	s.Poisson(4000)
	require.Equal(t, 8, c.draws)

	v := make(Sample, 2000)
	for i := range v {
		v[i] = s.Poisson(2000)
	}
	require.InEpsilon(t, 2000.0, Mean(v), 0.01)
	require.InEpsilon(t, math.Sqrt(2000), StandardDev(v), 0.1)
}

func TestPMFPoissonMatchesReference(t *testing.T) {
	for _, lambda := range []float64{0.5, 3, 12} {
		for x := 0.0; x <= 20; x++ {
			want := distuv.Poisson{Lambda: lambda}.Prob(x)
			require.InDelta(t, want, PMFPoisson(x, lambda), 1e-12, "lambda=%v x=%v", lambda, x)
		}
	}
}
