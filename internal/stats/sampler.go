package stats

import "statfn/internal/rng"

// Sampler draws random variates from the distributions in this package.
// It keeps no state besides Src, so concurrent use is safe exactly when
// Src is.
type Sampler struct {
	Src rng.Source
}

// NewSampler returns a Sampler drawing from src.
func NewSampler(src rng.Source) Sampler {
	return Sampler{Src: src}
}
