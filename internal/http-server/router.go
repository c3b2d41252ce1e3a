package httpserver

import (
	"log/slog"
	"net/http"

	"randstring/internal/http-server/handlers/stats"
	"randstring/internal/http-server/handlers/token/alphabets"
	"randstring/internal/http-server/handlers/token/issue"
	"randstring/internal/http-server/middleware/auth"
	mwLogger "randstring/internal/http-server/middleware/logger"
	mwMetrics "randstring/internal/http-server/middleware/metrics"
	"randstring/internal/lib/jwt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsPath = "/metrics"

// TokenService is everything the HTTP API needs from the token service.
type TokenService interface {
	issue.TokenIssuer
	alphabets.AlphabetLister
	stats.StatsProvider
}

// NewRouter wires the API routes. A nil validator leaves /tokens unauthenticated.
func NewRouter(log *slog.Logger, svc TokenService, validator auth.ClaimsValidator) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(mwMetrics.New(metricsPath))

	router.Route("/tokens", func(r chi.Router) {
		if validator != nil {
			r.Use(auth.New(log, validator, jwt.ScopeIssue))
		}
		r.Post("/", issue.New(log, svc))
	})

	router.Get("/alphabets", alphabets.New(log, svc))
	router.Get("/stats", stats.New(log, svc))
	router.Handle(metricsPath, promhttp.Handler())

	return router
}
