package funcs

import (
	"sort"

	"github.com/cockroachdb/errors"

	"statfn/internal/rng"
	"statfn/internal/stats"
)

var (
	// ErrUnknownFunction is returned by Call for a name that is not registered.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrSignature is returned by Call when the arguments do not match the
	// registered parameter kinds.
	ErrSignature = errors.New("arguments do not match signature")
)

// value is one converted argument.
type value struct {
	num  float64
	list stats.Sample
}

type args []value

func (a args) num(i int) float64        { return a[i].num }
func (a args) list(i int) stats.Sample { return a[i].list }

type impl func(s stats.Sampler, a args) (float64, error)

type entry struct {
	spec Spec
	fn   impl
}

// Registry exposes the statistics functions to an expression evaluator
// under fixed names, with typed signatures.
type Registry struct {
	src     rng.Source
	metrics *Metrics
	entries map[string]entry
}

// New returns a registry whose random functions draw from src. A nil src
// means rng.Global(); m may be nil.
func New(src rng.Source, m *Metrics) *Registry {
	if src == nil {
		src = rng.Global()
	}
	r := &Registry{src: src, metrics: m, entries: make(map[string]entry, len(builtins))}
	for _, e := range builtins {
		r.entries[e.spec.Name] = e
	}
	return r
}

// WithSource returns a copy of r drawing from src. The copy shares r's
// function table and metrics. A nil src means rng.Global().
func (r *Registry) WithSource(src rng.Source) *Registry {
	if src == nil {
		src = rng.Global()
	}
	c := *r
	c.src = src
	return &c
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	e, ok := r.entries[name]
	return e.spec, ok
}

// Specs returns every registered spec ordered by name.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Call evaluates the function registered under name.
//
// Number parameters accept any Go numeric value. List parameters accept
// []float64, stats.Sample or []any; a non-numeric element of an []any
// fails with stats.ErrTypeKind.
func (r *Registry) Call(name string, in ...any) (float64, error) {
	e, ok := r.entries[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownFunction, "%q", name)
	}
	res, err := r.call(e, in)
	r.metrics.observe(name, err)
	return res, err
}

func (r *Registry) call(e entry, in []any) (float64, error) {
	if len(in) != len(e.spec.Params) {
		return 0, errors.Wrapf(ErrSignature, "%s: got %d arguments", e.spec.Signature(), len(in))
	}
	a := make(args, len(in))
	for i, kind := range e.spec.Params {
		v, err := convert(kind, in[i])
		if err != nil {
			return 0, errors.Wrapf(err, "%s: argument %d", e.spec.Name, i+1)
		}
		a[i] = v
	}
	return e.fn(stats.NewSampler(r.src), a)
}

func convert(kind Kind, in any) (value, error) {
	switch kind {
	case Number:
		s, err := stats.SampleOf([]any{in})
		if err != nil {
			return value{}, errors.Wrapf(ErrSignature, "want number, got %T", in)
		}
		return value{num: s[0]}, nil
	case List:
		switch l := in.(type) {
		case stats.Sample:
			return value{list: l}, nil
		case []float64:
			return value{list: l}, nil
		case []any:
			s, err := stats.SampleOf(l)
			if err != nil {
				return value{}, err
			}
			return value{list: s}, nil
		default:
			return value{}, errors.Wrapf(ErrSignature, "want list, got %T", in)
		}
	default:
		return value{}, errors.AssertionFailedf("unsupported parameter kind %s", kind)
	}
}
