package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opsdesk/backend/internal/config"
	"github.com/opsdesk/backend/internal/db"
	"github.com/opsdesk/backend/internal/events"
	"go.uber.org/zap"
)

// Postgres channel the audit_logs insert trigger notifies on.
const auditChannel = "audit_log_inserted"

// Audit Notify Bridge relays audit_logs insert notifications from Postgres to Redis so
// API instances can push reload hints to connected admins.

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	publisher := events.NewRedisPublisher(rdb, log)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down audit-notify-bridge")
		cancel()
	}()

	log.Info("audit-notify-bridge started")

	relay := func(payload string) {
		event, err := events.AuditRecorded(payload)
		if err != nil {
			log.Warn("dropping malformed notification", zap.String("payload", payload), zap.Error(err))
			return
		}
		_ = publisher.Publish(ctx, events.StreamAudit, event)
	}

	// Reconnect until shutdown; notifications sent while disconnected are lost.
	for ctx.Err() == nil {
		if err := db.Listen(ctx, pool, auditChannel, log, relay); err != nil {
			log.Error("listen failed, retrying", zap.Error(err))
			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Second):
			}
		}
	}
}
