package funcs

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts function evaluations. A nil *Metrics records nothing.
type Metrics struct {
	calls  *prometheus.CounterVec
	errors *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "statfn",
			Name:      "calls_total",
			Help:      "Number of function evaluations, by function name.",
		}, []string{"function"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "statfn",
			Name:      "call_errors_total",
			Help:      "Number of function evaluations that returned an error, by function name.",
		}, []string{"function"}),
	}
	if err := reg.Register(m.calls); err != nil {
		return nil, err
	}
	if err := reg.Register(m.errors); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(name string, err error) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(name).Inc()
	if err != nil {
		m.errors.WithLabelValues(name).Inc()
	}
}
