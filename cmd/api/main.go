package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/inventory-api/internal/audit"
	"github.com/ariefcatur/inventory-api/internal/config"
	"github.com/ariefcatur/inventory-api/internal/httpx"
	"github.com/ariefcatur/inventory-api/internal/inventory"
	kafkax "github.com/ariefcatur/inventory-api/internal/kafka"
	"github.com/ariefcatur/inventory-api/internal/obs"
	"github.com/ariefcatur/inventory-api/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := obs.New(cfg.LogLevel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Document store
	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	repo, closeStore, err := store.Open(connectCtx, cfg, log)
	connectCancel()
	if err != nil {
		log.Error("store_open_failed", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// Audit stream (opsional)
	var rec audit.Recorder = audit.Nop{}
	var prod *kafkax.Producer
	if cfg.AuditEnabled() {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, cfg.AuditTopic, 1024, log)
		prod.Start(ctx)
		rec = &audit.KafkaRecorder{Producer: prod, Service: cfg.ServiceName, Log: log}
		log.Info("audit_enabled", "topic", cfg.AuditTopic, "brokers", cfg.KafkaBrokers)
	}

	// Service & handler
	svc := &inventory.Service{Repo: repo, Audit: rec}
	router := httpx.NewRouter(log)
	ph := &httpx.ProductsHandler{
		Products: svc,
		Ready:    repo,
		Timeout:  cfg.RequestTimeout,
		Log:      log,
	}
	ph.Register(router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("http_listen", "addr", cfg.HTTPAddr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.Info("shutdown_signal", "signal", s.String())

	ctx2, cancel2 := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel2()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Error("http_shutdown_error", "error", err)
	}
	if prod != nil {
		prod.Close()      // tutup inbox -> flush & close writer
		prod.WaitClosed() // drain
	}
	log.Info("service_stopped")
}
