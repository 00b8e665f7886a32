package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	_ "github.com/rogerio-castellano/retail-sales-api/docs"
	"github.com/rogerio-castellano/retail-sales-api/internal/config"
	api "github.com/rogerio-castellano/retail-sales-api/internal/http"
	"github.com/rogerio-castellano/retail-sales-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/retail-sales-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/retail-sales-api/internal/ingest"
	"github.com/rogerio-castellano/retail-sales-api/internal/redissvc"
	"github.com/rogerio-castellano/retail-sales-api/internal/repo"
)

// @title Retail Sales API
// @version 1.0
// @description Paginated, filterable, sortable view over the retail sales dataset.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	go rl.StartVisitorCleanupLoop()

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetSalesCache(redissvc.NewCache(rdb, cfg.Redis.TTL))
	}

	var source ingest.Source
	if cfg.Data.File != "" {
		source = ingest.FileSource{Path: cfg.Data.File}
	} else {
		source = ingest.NewHTTPSource(cfg.Data.URL, cfg.Data.Timeout)
	}

	store := repo.NewInMemorySaleRepository()
	loader := ingest.NewLoader(source, store)
	handlers.SetSaleRepo(store)
	handlers.SetLoader(loader)

	// Warm start: kick off ingestion now so the first request does not pay
	// for it. A failure here is not fatal; requests retry the load.
	go func() {
		if err := loader.Ensure(context.Background()); err != nil {
			log.Printf("initial sales data load failed: %v", err)
		}
	}()

	r := api.NewRouter()
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("✅ Server running on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
