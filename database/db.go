package database

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tripdesk/config"
)

// Pool is the global Postgres connection pool. It stays nil when
// DATABASE_URL is not configured; the catalog then runs on fallback data and
// the passthrough endpoints report an upstream failure.
var Pool *pgxpool.Pool

// InitDB initializes the Postgres connection pool. A connect failure is not
// fatal: the primary source is probed per request and classified there.
func InitDB() {
	if config.AppConfig.DatabaseURL == "" {
		log.Println("DATABASE_URL not set; primary datastore disabled")
		return
	}

	pool, err := pgxpool.New(context.Background(), config.AppConfig.DatabaseURL)
	if err != nil {
		log.Printf("failed to configure Postgres pool: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		log.Printf("Postgres not reachable at startup: %v", err)
	} else {
		log.Println("Connected to Postgres successfully!")
	}
	Pool = pool
}
