package main

import (
	"braess-route-service/internal/adapters/cache"
	"braess-route-service/internal/adapters/repositories"
	"braess-route-service/internal/api"
	"braess-route-service/internal/config"
	"braess-route-service/internal/platform/db"
	"braess-route-service/internal/ports"
	"braess-route-service/internal/services"
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// main is the application composition root.
// It wires the report stores behind ports and starts the HTTP server.
func main() {
	config.Load()

	port := config.Get("PORT", "8080")
	defaultDrivers := mustInt("DRIVERS", 10000)
	maxDrivers := mustInt("MAX_DRIVERS", 20000)
	workers := mustInt("WORKERS", 0)
	cacheTTL, err := config.GetDuration("REPORT_CACHE_TTL", 24*time.Hour)
	if err != nil {
		log.Fatal(err)
	}

	// Fastest store first; misses fall through and are backfilled.
	stores := []ports.ReportStore{cache.NewMemoryReportCache()}

	if redisURL := config.Get("REDIS_URL", ""); redisURL != "" {
		rc, err := cache.NewRedisReportCache(redisURL, cacheTTL)
		if err != nil {
			log.Fatal(err)
		}
		defer rc.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = rc.Ping(ctx)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		stores = append(stores, rc)
	}

	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := repositories.InitSchema(context.Background(), conn); err != nil {
			log.Fatal(err)
		}
		stores = append(stores, repositories.NewPostgresReportRepository(conn))
	}

	evaluator := services.NewCachedEvaluator(workers, stores...)
	router := api.NewRouter(evaluator, api.RouterConfig{
		DefaultDrivers: defaultDrivers,
		MaxDrivers:     maxDrivers,
	})

	// A cold sweep at MAX_DRIVERS can take several seconds.
	log.Printf("Server listening addr=:%s stores=%d", port, len(stores))
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func mustInt(key string, fallback int) int {
	n, err := config.GetInt(key, fallback)
	if err != nil {
		log.Fatal(err)
	}
	return n
}
