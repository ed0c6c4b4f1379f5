package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/http/handler"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/adapter/http/middleware"
	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	DebtHandler      *handler.DebtHandler
	PaymentHandler   *handler.PaymentHandler
	ScoreHandler     *handler.ScoreHandler
	RulesHandler     *handler.RulesHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health endpoints
	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.Liveness)
		r.Get("/ready", cfg.HealthHandler.Readiness)
	}

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Debts
		r.Route("/debts", func(r chi.Router) {
			r.Post("/", cfg.DebtHandler.Create)
			r.Get("/{id}", cfg.DebtHandler.Get)
			r.Delete("/{id}", cfg.DebtHandler.Delete)
			r.Get("/{id}/chain", cfg.DebtHandler.GetChain)
			r.Post("/{id}/payments", cfg.PaymentHandler.Apply)
		})

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Get("/{id}/debts", cfg.DebtHandler.ListByParticipant)
			r.Get("/{id}/score", cfg.ScoreHandler.Get)
		})

		// Score rules
		r.Route("/rules", func(r chi.Router) {
			r.Get("/", cfg.RulesHandler.Get)
			r.Put("/", cfg.RulesHandler.Update)
		})
	})

	return r
}
