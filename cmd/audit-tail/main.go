package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariefcatur/inventory-api/internal/audit"
	"github.com/ariefcatur/inventory-api/internal/config"
	kafkax "github.com/ariefcatur/inventory-api/internal/kafka"
	"github.com/ariefcatur/inventory-api/internal/obs"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := obs.New(cfg.LogLevel)

	if !cfg.AuditEnabled() {
		log.Error("audit_tail_disabled", "reason", "KAFKA_BROKERS is empty")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.AuditGroup, cfg.AuditTopic, cfg.AuditWorkers, log)
	log.Info("audit_tail_started", "group", cfg.AuditGroup, "topic", cfg.AuditTopic, "workers", cfg.AuditWorkers)
	if err := cons.Start(ctx, audit.Tail(log)); err != nil {
		log.Error("consumer_exit", "error", err)
		os.Exit(1)
	}
	log.Info("audit_tail_stopped")
}
