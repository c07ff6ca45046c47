package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	require.Equal(t, 1.0, Factorial(0))
	require.Equal(t, 1.0, Factorial(1))
	require.Equal(t, 120.0, Factorial(5))
	require.Equal(t, 3628800.0, Factorial(10))
	require.InDelta(t, math.Sqrt(math.Pi)/2, Factorial(0.5), 1e-12)
	require.True(t, math.IsInf(Factorial(171), 1))
}

func TestCombinations(t *testing.T) {
	require.Equal(t, 1.0, Combinations(5, 0))
	require.Equal(t, 10.0, Combinations(5, 2))
	require.Equal(t, 252.0, Combinations(10, 5))
	require.Equal(t, 0.0, Combinations(3, 4))
	require.Equal(t, 0.0, Combinations(3, -1))
	require.InEpsilon(t, 1.0089134454556419e29, Combinations(100, 50), 1e-9)
	require.InDelta(t, 1.875, Combinations(2.5, 2), 1e-9)
}

func TestIsInt(t *testing.T) {
	require.True(t, IsInt(3))
	require.True(t, IsInt(-2))
	require.False(t, IsInt(2.5))
	require.False(t, IsInt(math.NaN()))
}
