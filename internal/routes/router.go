package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"redline-garage/pitwall/internal/api"
	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/config"
	"redline-garage/pitwall/internal/logging"
	"redline-garage/pitwall/internal/middleware"
)

func RegisterRoutes(deps *api.Dependencies, cfg *config.Config, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RespondError(w, time.Now(), nil, "Route not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		common.RespondError(w, time.Now(), nil, "Method not allowed", http.StatusMethodNotAllowed)
	})

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(deps.SqlxDB, deps.Services.Cache, upSince))

	RegisterAPIRoutes(r, deps, cfg)

	return r
}
