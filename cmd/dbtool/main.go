package main

import (
	"braess-route-service/internal/adapters/repositories"
	"braess-route-service/internal/config"
	"braess-route-service/internal/platform/db"
	"context"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	config.Load()

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(context.Background(), conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
