package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler serving the registry's metrics in
// Prometheus exposition format. The host application mounts it on its own
// server; this package owns no listener, TLS, or auth.
func (r *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prometheusRegistry, promhttp.HandlerOpts{
		// Surface gather errors in the scrape output rather than failing the scrape
		ErrorHandling: promhttp.ContinueOnError,
	})
}
