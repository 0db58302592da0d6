package history

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes the number of in-memory entries as a Prometheus gauge.
func (s *Store) Collector() prometheus.Collector {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "calculator",
		Subsystem: "history",
		Name:      "entries",
		Help:      "Number of entries in the in-memory calculation history.",
	}, func() float64 {
		return float64(s.Len())
	})
}
