package stats

import "github.com/cockroachdb/errors"

var (
	// ErrTypeKind is returned when a sample contains a non-numeric element.
	ErrTypeKind = errors.New("can't sum non-number data")

	// ErrDomain is returned by Sampler.Gamma for a non-integer shape.
	ErrDomain = errors.New("can't calculate for n not an integer")

	// ErrLengthMismatch is returned by Regress when y has fewer values than x.
	ErrLengthMismatch = errors.New("regression samples differ in length")
)
