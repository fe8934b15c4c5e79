// Package store opens the document store backend selected in configuration.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ariefcatur/inventory-api/internal/catalog"
	"github.com/ariefcatur/inventory-api/internal/config"
	"github.com/ariefcatur/inventory-api/internal/memstore"
	"github.com/ariefcatur/inventory-api/internal/mongox"
	"github.com/ariefcatur/inventory-api/internal/postgres"
	"github.com/ariefcatur/inventory-api/internal/redisx"
)

// Backend is a repository that can also report readiness.
type Backend interface {
	catalog.Repository
	catalog.Pinger
}

// Open connects to the configured backend. The returned close func is never nil.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (Backend, func(), error) {
	switch cfg.StoreDriver {
	case "memory", "":
		var seed []catalog.Product
		if cfg.SeedFile != "" {
			ps, err := memstore.LoadFile(cfg.SeedFile)
			if err != nil {
				return nil, func() {}, err
			}
			seed = ps
		}
		log.Info("store_connected", "driver", "memory", "documents", len(seed))
		return memstore.New(seed...), func() {}, nil

	case "postgres":
		db, err := postgres.Connect(ctx, cfg.PostgresDSN, postgres.PoolOptions{
			MaxConns: int32(cfg.PGMaxConns),
			AppName:  cfg.ServiceName,
		})
		if err != nil {
			return nil, func() {}, fmt.Errorf("postgres connect: %w", err)
		}
		log.Info("store_connected", "driver", "postgres", "table", cfg.StoreCollection)
		return postgres.NewProductRepo(db, cfg.StoreCollection), db.Close, nil

	case "mongo":
		c, err := mongox.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, func() {}, fmt.Errorf("mongo connect: %w", err)
		}
		log.Info("store_connected", "driver", "mongo", "database", cfg.StoreDatabase, "collection", cfg.StoreCollection)
		return mongox.NewProductRepo(c, cfg.StoreDatabase, cfg.StoreCollection),
			func() { _ = c.Disconnect(context.Background()) }, nil

	case "redis":
		rdb := redisx.New(cfg.RedisAddr)
		repo := redisx.NewProductRepo(rdb, cfg.StoreDatabase, cfg.StoreCollection)
		if err := repo.Ping(ctx); err != nil {
			_ = rdb.Close()
			return nil, func() {}, fmt.Errorf("redis connect: %w", err)
		}
		log.Info("store_connected", "driver", "redis", "addr", cfg.RedisAddr)
		return repo, func() { _ = rdb.Close() }, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
