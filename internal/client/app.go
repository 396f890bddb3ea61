// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/service"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/internal/workers"
)

type App struct {
	services *service.ClientServices
	storage  store.TempFileStorage
	sweeper  *workers.TempSweeper
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp builds every component described by cfg.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storage, err := store.NewTempFileStorage(cfg.Storage.TempDir, log)
	if err != nil {
		return nil, fmt.Errorf("create temp storage: %w", err)
	}

	mediaStore, err := NewMediaStore(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create media store: %w", err)
	}

	services, err := service.NewClientServices(cfg, storage, mediaStore, log)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	sweeper := workers.NewTempSweeper(storage, cfg.Storage.OrphanTTL, cfg.Workers.SweepInterval, log)

	return &App{
		services: services,
		storage:  storage,
		sweeper:  sweeper,
		workers:  workers.NewWorkers(sweeper),
		logger:   log,
	}, nil
}

// NewMediaStore returns the adapter selected by cfg.Kind, or nil for
// [config.AdapterNone].
func NewMediaStore(cfg config.Adapter, log *logger.Logger) (adapter.MediaStore, error) {
	switch cfg.Kind {
	case config.AdapterHTTP:
		return adapter.NewHTTPMediaStore(adapter.HTTPConfig{
			Address:        cfg.HTTPAddress,
			RequestTimeout: cfg.RequestTimeout,
			HashKey:        cfg.HashKey,
		}, log)
	case config.AdapterS3:
		return adapter.NewS3MediaStore(adapter.S3Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			Prefix:          cfg.S3.Prefix,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		}, log)
	case config.AdapterNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", config.ErrInvalidAdapterConfigs, cfg.Kind)
	}
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

func (a *App) Storage() store.TempFileStorage {
	return a.storage
}

func (a *App) Sweeper() *workers.TempSweeper {
	return a.sweeper
}

// Start runs the background workers until the returned stop function is
// called or ctx is cancelled. stop blocks until every worker has exited.
func (a *App) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.workers.Run(ctx)
	}()

	a.logger.Debug().Str("temp_dir", a.storage.Dir()).Msg("background workers started")

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
			a.logger.Debug().Msg("background workers stopped")
		})
	}
}
