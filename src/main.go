package main

import (
	"context"
	"log"
	"net/http"

	"github.com/AkshatM1707/finance-assistant/src/api"
	"github.com/AkshatM1707/finance-assistant/src/config"
	"github.com/AkshatM1707/finance-assistant/src/db"
	"github.com/AkshatM1707/finance-assistant/src/extraction"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	// Run migrations
	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	// Analytics cache
	db.InitCache()

	// Router
	router := api.NewRouter(pool, extraction.NewMockProvider())

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
