// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-product-tracker/internal/config"
	"github.com/MKhiriev/go-product-tracker/internal/logger"
	"github.com/MKhiriev/go-product-tracker/internal/service"
)

// sweepBatchSize bounds how many abandoned uploads one sweep removes.
const sweepBatchSize = 100

// UploadSweeper periodically removes uploads whose metadata was written but
// whose payload was never confirmed, for example after a crash between the
// two steps of an upload.
type UploadSweeper struct {
	documents service.DocumentService
	ttl       time.Duration
	interval  time.Duration
	now       func() time.Time
	logger    *logger.Logger
}

// NewUploadSweeper creates a sweeper over the document service.
func NewUploadSweeper(documents service.DocumentService, cfg config.Workers, logger *logger.Logger) *UploadSweeper {
	return &UploadSweeper{
		documents: documents,
		ttl:       cfg.PendingUploadTTL,
		interval:  cfg.SweepInterval,
		now:       time.Now,
		logger:    logger,
	}
}

// Run sweeps once at start and then on every tick until ctx is cancelled.
func (s *UploadSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Warn().Msg("upload sweeper disabled: non-positive interval")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Dur("ttl", s.ttl).Msg("upload sweeper started")

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("upload sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

// sweep drains stale uploads in batches until a batch comes back short.
func (s *UploadSweeper) sweep(ctx context.Context) {
	olderThan := s.now().Add(-s.ttl)

	total := 0
	for ctx.Err() == nil {
		removed, err := s.documents.SweepPendingUploads(ctx, olderThan, sweepBatchSize)
		total += removed
		if err != nil {
			s.logger.Err(err).Int("removed", total).Msg("sweeping abandoned uploads failed")
			return
		}
		if removed < sweepBatchSize {
			break
		}
	}

	if total > 0 {
		s.logger.Info().Int("removed", total).Msg("abandoned uploads removed")
	}
}
