// Package httpapi assembles the public HTTP surface.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"barhub/internal/crm"
	"barhub/internal/platform/metrics"
	"barhub/internal/platform/middleware"
	"barhub/pkg/platform/httputil"
)

// Deps are the collaborators the router mounts.
type Deps struct {
	CRM       *crm.Handler
	Validator middleware.TenantTokenValidator
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
	// MetricsHandler serves /metrics; nil uses the default Prometheus registry.
	MetricsHandler http.Handler
}

// NewRouter wires request middleware, unauthenticated probes and the
// tenant-scoped CRM routes.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics(d.Metrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	metricsHandler := d.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Handle("/metrics", metricsHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireTenant(d.Validator, d.Logger))
		d.CRM.Register(r)
	})
	return r
}
