// Package metric provides the Prometheus registry plumbing for genbuf's
// optional metrics export.
//
// # Overview
//
// MetricsRegistry wraps a private prometheus.Registry and tracks registered
// collectors by "component.metric" key, so two buffers exporting under the
// same prefix are rejected with a classified error instead of colliding
// inside Prometheus.
//
// The registry is created once by the host application and shared across
// buffers:
//
//	registry := metric.NewMetricsRegistry()
//
//	buf, err := buffer.New[int](1000,
//	    buffer.WithMetrics[int](registry, "event_window"),
//	)
//
// # Exposition
//
// Handler() returns a promhttp handler for the registry. The host mounts it
// wherever it serves metrics:
//
//	mux.Handle("/metrics", registry.Handler())
//
// Go runtime and process collectors are registered at construction, so a
// scrape of an otherwise idle registry still yields standard runtime series.
//
// # Error Handling
//
// Registration failures return classified errors from the genbuf errors
// package: duplicate registrations are Invalid, underlying Prometheus
// failures are Fatal.
package metric
