package buffer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/genbuf/metric"
)

// bufferMetrics holds Prometheus metrics for buffer operations.
type bufferMetrics struct {
	// Counter metrics
	pushes     prometheus.Counter
	lookups    prometheus.Counter
	stale      prometheus.Counter
	overwrites prometheus.Counter
	laps       prometheus.Counter

	// Gauge metrics
	size        prometheus.Gauge
	utilization prometheus.Gauge
	generation  prometheus.Gauge
}

// newBufferMetrics creates and registers buffer metrics with the provided registry.
func newBufferMetrics(registry *metric.MetricsRegistry, prefix string) (*bufferMetrics, error) {
	m := &bufferMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "genbuf",
			Subsystem:   "buffer",
			Name:        "pushes_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of insertions",
		}),
		lookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "genbuf",
			Subsystem:   "buffer",
			Name:        "lookups_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of handle lookups",
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "genbuf",
			Subsystem:   "buffer",
			Name:        "stale_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of lookups rejected for stale or out-of-range handles",
		}),
		overwrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "genbuf",
			Subsystem:   "buffer",
			Name:        "overwrites_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of values displaced by insertions",
		}),
		laps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "genbuf",
			Subsystem:   "buffer",
			Name:        "laps_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of completed cursor traversals",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "genbuf",
			Subsystem:   "buffer",
			Name:        "size",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of entries in the buffer",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "genbuf",
			Subsystem:   "buffer",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Buffer utilization as a percentage (0.0 to 1.0)",
		}),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "genbuf",
			Subsystem:   "buffer",
			Name:        "generation",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current generation counter",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(prefix, "buffer_pushes", m.pushes); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_lookups", m.lookups); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_stale", m.stale); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_overwrites", m.overwrites); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "buffer_laps", m.laps); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_utilization", m.utilization); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_generation", m.generation); err != nil {
		return nil, err
	}

	return m, nil
}

// recordPush increments the push counter and updates size/utilization/generation.
func (m *bufferMetrics) recordPush(size, capacity int, generation uint32) {
	m.pushes.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
	m.generation.Set(float64(generation))
}

// recordLookup increments the lookup counter.
func (m *bufferMetrics) recordLookup() {
	m.lookups.Inc()
}

// recordStale increments the stale-lookup counter.
func (m *bufferMetrics) recordStale() {
	m.stale.Inc()
}

// recordOverwrite increments the overwrite counter.
func (m *bufferMetrics) recordOverwrite() {
	m.overwrites.Inc()
}

// recordLap increments the lap counter.
func (m *bufferMetrics) recordLap() {
	m.laps.Inc()
}

// recordClear resets the size, utilization, and generation gauges.
func (m *bufferMetrics) recordClear() {
	m.size.Set(0)
	m.utilization.Set(0)
	m.generation.Set(0)
}
