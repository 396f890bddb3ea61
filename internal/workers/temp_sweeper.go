// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/store"
)

const defaultSweepInterval = 5 * time.Minute

// TempSweeper deletes temp files older than a TTL. Decrypted media left
// behind by a crash or a missed Release would otherwise stay on disk.
type TempSweeper struct {
	storage  store.TempFileStorage
	ttl      time.Duration
	interval time.Duration

	logger *logger.Logger
}

// NewTempSweeper creates a sweeper for storage. A non-positive interval
// defaults to 5 minutes.
func NewTempSweeper(storage store.TempFileStorage, ttl, interval time.Duration, log *logger.Logger) *TempSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &TempSweeper{
		storage:  storage,
		ttl:      ttl,
		interval: interval,
		logger:   log,
	}
}

// Run implements [Worker]. It sweeps once right away and then on every tick
// until ctx is cancelled.
func (s *TempSweeper) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

// SweepOnce removes stale temp files and returns how many were deleted.
func (s *TempSweeper) SweepOnce(ctx context.Context) (int, error) {
	return s.storage.Sweep(ctx, s.ttl)
}

func (s *TempSweeper) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
		s.logger.Error().Err(err).Str("worker", "temp_sweeper").Msg("sweep failed")
	}
}
