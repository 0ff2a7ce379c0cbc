package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/opsdesk/backend/internal/config"
	"github.com/opsdesk/backend/internal/db"
	"github.com/opsdesk/backend/internal/repositories"
	"github.com/opsdesk/backend/internal/services"
	"go.uber.org/zap"
)

// Audit Snapshot resolves the most recent audit records once and writes them to stdout as
// JSON, for exports and for checking resolution against a live database.

func main() {
	limit := flag.Int("limit", 0, "records to fetch (0 uses AUDIT_FETCH_LIMIT)")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	svc := services.NewAuditService(repositories.NewAuditRepo(pool), repositories.NewLookupRepo(pool), cfg, log)
	entries, err := svc.Load(ctx, *limit)
	if err != nil {
		log.Fatal("snapshot failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		log.Fatal("failed to write snapshot", zap.Error(err))
	}
	log.Info("snapshot written", zap.Int("entries", len(entries)))
}
