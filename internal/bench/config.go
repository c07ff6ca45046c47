package bench

import (
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"statfn/internal/funcs"
)

// Case is one generator with its parameters and the theoretical moments
// the empirical ones are compared against.
type Case struct {
	Name         string    `yaml:"name"`
	Func         string    `yaml:"func"`
	Args         []float64 `yaml:"args"`
	WantMean     float64   `yaml:"want_mean"`
	WantVariance float64   `yaml:"want_variance"`
}

type Config struct {
	Runs          int           `yaml:"runs"`
	Draws         int           `yaml:"draws"`
	BaseSeed      int64         `yaml:"seed"`
	PerRunTimeout time.Duration `yaml:"per_run_timeout"` // 0 = no timeout
	Cases         []Case        `yaml:"cases"`
}

func DefaultConfig() Config {
	return Config{
		Runs:     30,
		Draws:    10000,
		BaseSeed: 1000,
		Cases:    DefaultCases(),
	}
}

// DefaultCases covers every generator, including a Poisson rate above 500
// that is drawn as the sum of two halves.
func DefaultCases() []Case {
	return []Case{
		{Name: "normal", Func: "randomNormal", Args: []float64{2, 3}, WantMean: 2, WantVariance: 9},
		{Name: "bernoulli", Func: "randomBernoulli", Args: []float64{0.3}, WantMean: 0.3, WantVariance: 0.21},
		{Name: "binomial", Func: "randomBinomial", Args: []float64{20, 0.4}, WantMean: 8, WantVariance: 4.8},
		{Name: "geometric", Func: "randomGeometric", Args: []float64{0.25}, WantMean: 3, WantVariance: 12},
		{Name: "poisson", Func: "randomPoisson", Args: []float64{5}, WantMean: 5, WantVariance: 5},
		{Name: "poisson-large", Func: "randomPoisson", Args: []float64{1200}, WantMean: 1200, WantVariance: 1200},
		{Name: "exponential", Func: "randomExponential", Args: []float64{0.5}, WantMean: 2, WantVariance: 4},
		{Name: "gamma", Func: "randomGamma", Args: []float64{3, 2}, WantMean: 1.5, WantVariance: 0.75},
	}
}

// LoadConfig reads a YAML file over DefaultConfig; fields the file leaves
// out keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Runs <= 0 {
		return errors.Newf("runs must be > 0 (got %d)", c.Runs)
	}
	if c.Draws < 2 {
		return errors.Newf("draws must be >= 2 (got %d)", c.Draws)
	}
	if c.PerRunTimeout < 0 {
		return errors.Newf("per_run_timeout must be >= 0 (got %s)", c.PerRunTimeout)
	}
	if len(c.Cases) == 0 {
		return errors.New("no cases configured")
	}

	reg := funcs.New(nil, nil)
	seen := make(map[string]bool, len(c.Cases))
	for _, cs := range c.Cases {
		if cs.Name == "" {
			return errors.Newf("case with func %q has no name", cs.Func)
		}
		if seen[cs.Name] {
			return errors.Newf("duplicate case name %q", cs.Name)
		}
		seen[cs.Name] = true

		spec, ok := reg.Lookup(cs.Func)
		if !ok || !strings.HasPrefix(spec.Name, "random") {
			return errors.Newf("case %q: %q is not a random generator", cs.Name, cs.Func)
		}
		if len(cs.Args) != len(spec.Params) {
			return errors.Newf("case %q: %s takes %d arguments (got %d)",
				cs.Name, cs.Func, len(spec.Params), len(cs.Args))
		}
		if cs.WantVariance < 0 {
			return errors.Newf("case %q: want_variance must be >= 0", cs.Name)
		}
	}
	return nil
}
