// Package httptransport assembles the process router: the case API, the
// dashboard pages and the operational endpoints behind one middleware chain.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"casedesk/internal/dashboard/client"
	"casedesk/internal/dashboard/web"
	"casedesk/internal/platform/metrics"
	"casedesk/internal/platform/middleware"
	"casedesk/pkg/platform/httputil"
)

// Registrar mounts routes on a router.
type Registrar interface {
	Register(r chi.Router)
}

// FixtureStats describes the loaded fixtures for the health report.
type FixtureStats interface {
	Source() string
	Len() int
	DetailCount() int
}

// HealthChecker is an optional dependency probed by /healthz.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps are the components served by the router.
type Deps struct {
	Cases    Registrar
	Fixtures FixtureStats
	// Redis is nil when fixtures do not come from Redis.
	Redis    HealthChecker
	// Postgres is nil when fixtures do not come from Postgres.
	Postgres HealthChecker
	// Metrics is optional; /metrics is mounted only when set.
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Location *time.Location
}

// NewRouter wires all public endpoints. The dashboard pages fetch from the
// case API through the same router without leaving the process, so the
// simulated latency and the request metrics apply to them too.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Latency(d.Metrics))

	r.Route("/api", d.Cases.Register)
	web.New(client.NewInProcess(r), d.Logger, d.Metrics, d.Location).Register(r)

	r.Get("/healthz", handleHealth(d))
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}
	return r
}

type fixtureHealth struct {
	Source  string `json:"source"`
	Cases   int    `json:"cases"`
	Details int    `json:"details"`
}

type healthResponse struct {
	Status   string        `json:"status"`
	Fixtures fixtureHealth `json:"fixtures"`
	Redis    string        `json:"redis"`
	Postgres string        `json:"postgres"`
}

func handleHealth(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Status: "ok",
			Fixtures: fixtureHealth{
				Source:  d.Fixtures.Source(),
				Cases:   d.Fixtures.Len(),
				Details: d.Fixtures.DetailCount(),
			},
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp.Redis = probe(ctx, d.Logger, "redis", d.Redis)
		resp.Postgres = probe(ctx, d.Logger, "postgres", d.Postgres)

		status := http.StatusOK
		if resp.Redis == "unreachable" || resp.Postgres == "unreachable" {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, status, resp)
	}
}

func probe(ctx context.Context, log *slog.Logger, name string, hc HealthChecker) string {
	if hc == nil {
		return "disabled"
	}
	if err := hc.Health(ctx); err != nil {
		log.WarnContext(ctx, name+" health check failed", "error", err)
		return "unreachable"
	}
	return "ok"
}
