/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for browser clients
  5. Instrument: Prometheus HTTP metrics
  6. RateLimit:  Per-client token buckets (aggregation routes only)

ROUTE GROUPS:
  /fonoma/backend/*     Aggregation + example endpoints (rate limited)
  /healthz              Liveness probe
  /metrics              Prometheus exposition
  /*                    Minimal HTML index listing the endpoints

SECURITY NOTE:
  No authentication middleware. All endpoints are public; the rate limiter
  is the only abuse control.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured. A nil limiter
// disables rate limiting (used by tests).
func NewRouter(h *Handler, rl *RateLimiter) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(Instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Aggregation + example routes
	r.Route("/fonoma/backend", func(r chi.Router) {
		if rl != nil {
			r.Use(rl.Handler)
		}
		r.Post("/solution", h.Solution)
		r.Post("/summary", h.Summary)
		r.Get("/example", h.Example)
		r.Get("/examples", h.ListExamples)
	})

	// Operational routes
	r.Get("/healthz", h.Health)
	r.Method("GET", "/metrics", MetricsHandler())

	// Minimal index so a browser hitting the root sees where to go
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Revenue Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Revenue Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li><code>POST /fonoma/backend/solution</code> - Total revenue for a criterion</li>
<li><code>POST /fonoma/backend/summary</code> - Per-status revenue breakdown</li>
<li><a href="/fonoma/backend/example">/fonoma/backend/example</a> - Sample dataset with its total</li>
<li><a href="/fonoma/backend/examples">/fonoma/backend/examples</a> - Example catalog</li>
<li><a href="/healthz">/healthz</a> - Liveness</li>
<li><a href="/metrics">/metrics</a> - Prometheus metrics</li>
</ul>
</body>
</html>`))
	})

	return r
}
