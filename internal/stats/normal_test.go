package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"statfn/internal/rng"
)

func TestCDFNormalCenter(t *testing.T) {
	require.InDelta(t, 0.5, CDFNormal(0), 1e-6)
}

func TestCDFNormalMatchesReference(t *testing.T) {
	for z := 0.0; z <= 6; z += 0.05 {
		require.InDelta(t, distuv.UnitNormal.CDF(z), CDFNormal(z), 1e-7, "z=%v", z)
	}
}

func TestCDFNormalNegativeIsNotReflected(t *testing.T) {
	// The formula is only valid for z >= 0; far left it leaves [0, 1].
	require.Less(t, CDFNormal(-3), 0.0)
	require.NotEqual(t, 1-CDFNormal(1), CDFNormal(-1))
}

func TestPDFNormalMatchesReference(t *testing.T) {
	for _, tc := range []struct{ x, mu, sigma float64 }{
		{0, 0, 1}, {1.5, 0, 1}, {-2, 1, 3}, {10, 9.5, 0.25},
	} {
		want := distuv.Normal{Mu: tc.mu, Sigma: tc.sigma}.Prob(tc.x)
		require.InDelta(t, want, PDFNormal(tc.x, tc.mu, tc.sigma), 1e-12)
	}
}

func TestPDFNormalIntegratesToOne(t *testing.T) {
	for _, tc := range []struct{ mu, sigma float64 }{{0, 1}, {3, 0.5}, {-20, 4}} {
		const steps = 200000
		lo, hi := tc.mu-12*tc.sigma, tc.mu+12*tc.sigma
		h := (hi - lo) / steps
		total := 0.0
		for i := 0; i < steps; i++ {
			total += PDFNormal(lo+(float64(i)+0.5)*h, tc.mu, tc.sigma) * h
		}
		require.InDelta(t, 1.0, total, 1e-6)
	}
}

func TestSamplerNormalBoxMuller(t *testing.T) {
	s := NewSampler(rng.Sequence(math.Exp(-2), 0))
	require.InDelta(t, 7.0, s.Normal(1, 3), 1e-12)

	s = NewSampler(rng.Sequence(0, 0))
	require.True(t, math.IsInf(s.Normal(0, 1), 1))
}

func TestSamplerNormalMoments(t *testing.T) {
	s := NewSampler(rng.New(11))
	v := make(Sample, 20000)
	for i := range v {
		v[i] = s.Normal(4, 2)
	}
	require.InDelta(t, 4.0, Mean(v), 0.1)
	require.InDelta(t, 2.0, StandardDev(v), 0.1)
}
