package api

import (
	"braess-route-service/internal/api/handlers"
	"braess-route-service/internal/metrics"
	"braess-route-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	DefaultDrivers int
	MaxDrivers     int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(evaluator ports.Evaluator, cfg RouterConfig) http.Handler {
	metrics.Register()

	mux := http.NewServeMux()

	evalHandler := &handlers.EvaluationHandler{
		Evaluator:      evaluator,
		DefaultDrivers: cfg.DefaultDrivers,
		MaxDrivers:     cfg.MaxDrivers,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/evaluations", evalHandler.Evaluate)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
