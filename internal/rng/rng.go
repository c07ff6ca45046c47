package rng

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// Source is a uniform pseudo-random source on [0, 1).
// *rand.Rand satisfies it. A Source is not required to be safe for
// concurrent use; concurrent callers should each own one or use Global.
type Source interface {
	Float64() float64
}

// New returns a deterministic source for the given seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SeedFor derives a stable seed for key from a base seed, so that
// different keys sharing a base seed draw independent streams.
func SeedFor(base int64, key string) int64 {
	return base ^ int64(xxhash.Sum64String(key)>>1)
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Global returns a Source backed by the goroutine-safe package-level
// math/rand generator.
func Global() Source {
	return globalSource{}
}

// Func adapts a plain function to a Source.
type Func func() float64

func (f Func) Float64() float64 { return f() }

// Sequence returns a Source that replays vals in order and then wraps around.
// It exists for tests that need to pin the uniform draws. At least one
// value is required.
func Sequence(vals ...float64) Source {
	if len(vals) == 0 {
		panic("rng.Sequence: no values")
	}
	i := 0
	return Func(func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	})
}
