package stats

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Sample is an ordered sequence of reals. Functions in this package never
// modify a Sample they are given.
type Sample []float64

// SampleOf converts host values into a Sample. Every element must be a Go
// numeric type; anything else fails with ErrTypeKind.
func SampleOf(values []any) (Sample, error) {
	s := make(Sample, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case float64:
			s[i] = x
		case float32:
			s[i] = float64(x)
		case int:
			s[i] = float64(x)
		case int8:
			s[i] = float64(x)
		case int16:
			s[i] = float64(x)
		case int32:
			s[i] = float64(x)
		case int64:
			s[i] = float64(x)
		case uint:
			s[i] = float64(x)
		case uint8:
			s[i] = float64(x)
		case uint16:
			s[i] = float64(x)
		case uint32:
			s[i] = float64(x)
		case uint64:
			s[i] = float64(x)
		default:
			return nil, errors.Wrapf(ErrTypeKind, "element %d is %T", i, v)
		}
	}
	return s, nil
}

// Sum returns the total of v; 0 for an empty sample.
func Sum(v Sample) float64 {
	t := 0.0
	for _, x := range v {
		t += x
	}
	return t
}

// Mean returns Sum(v)/len(v), or 0 when v is empty.
func Mean(v Sample) float64 {
	if len(v) == 0 {
		return 0
	}
	return Sum(v) / float64(len(v))
}

// Variance returns the unbiased sample variance (divisor n-1).
// A single-element sample yields NaN.
func Variance(v Sample) float64 {
	mean := Mean(v)
	s := 0.0
	for _, x := range v {
		d := x - mean
		s += d * d
	}
	return s / float64(len(v)-1)
}

// StandardDev returns the square root of Variance(v).
func StandardDev(v Sample) float64 {
	return math.Sqrt(Variance(v))
}
