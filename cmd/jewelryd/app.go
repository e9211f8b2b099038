package main

import (
	"context"
	"fmt"

	"jewelry-production-service/internal/config"
	"jewelry-production-service/internal/logger"
	"jewelry-production-service/internal/repository/memory"
	"jewelry-production-service/internal/repository/postgresql"
	"jewelry-production-service/internal/service"
)

// app holds what every subcommand needs.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	store service.Store
	// memDB is set when running on the in-memory store.
	memDB *memory.DB
	close func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	a := &app{cfg: cfg, log: log, close: func() { log.Sync() }}
	switch cfg.Storage {
	case config.StorageMemory:
		a.memDB = memory.NewDB()
		a.store = memory.NewStore(a.memDB)
		log.Warn("using in-memory storage; data is lost on exit")
	default:
		pool, err := postgresql.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("pg: %w", err)
		}
		a.store = postgresql.NewStore(pool, log)
		a.close = func() {
			pool.Close()
			log.Sync()
		}
		log.Debug("connected to postgres", "dsn", config.RedactDSN(cfg.PostgresDSN))
	}
	return a, nil
}
