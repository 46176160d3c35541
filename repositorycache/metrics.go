package repositorycache

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// Metrics counts cached list lookups per entity and result.
type Metrics struct {
	lookups *prometheus.CounterVec
}

// NewMetrics registers the lookup counter with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cv",
		Subsystem: "query_cache",
		Name:      "lookups_total",
		Help:      "Cached list lookups by entity and result (hit, miss, error).",
	}, []string{"entity", "result"})

	if err := reg.Register(lookups); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		lookups = are.ExistingCollector.(*prometheus.CounterVec)
	}

	return &Metrics{lookups: lookups}, nil
}

func (m *Metrics) observe(entity, result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(entity, result).Inc()
}
