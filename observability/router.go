package observability

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger is anything whose reachability decides readiness, typically the email store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter serves metrics and health probes. Extra routes, such as a store
// inspector, are mounted by the caller.
func NewRouter(store Pinger) chi.Router {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health/live", HealthLiveHandler)
	r.Get("/health/ready", HealthReadyHandler(store))
	return r
}

func HealthLiveHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func HealthReadyHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("Store unreachable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
