// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/gateway"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/metrics"
)

// CleanupWorker removes image folders whose compensating delete failed in
// the request path. Every interval it retries each pending folder once and
// gives up on a folder after maxAttempts failures.
type CleanupWorker struct {
	images      gateway.ImageStore
	queue       chan string
	interval    time.Duration
	maxAttempts int

	// pending maps a folder to its failed attempts. Owned by Run.
	pending map[string]int

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewCleanupWorker(images gateway.ImageStore, cfg config.Workers, metrics *metrics.Metrics, logger *logger.Logger) *CleanupWorker {
	return &CleanupWorker{
		images:      images,
		queue:       make(chan string, cfg.CleanupQueueSize),
		interval:    cfg.CleanupInterval,
		maxAttempts: cfg.CleanupMaxAttempts,
		pending:     make(map[string]int),
		metrics:     metrics,
		logger:      logger.Component("cleanup-worker"),
	}
}

// Enqueue schedules folder for removal. It never blocks and reports false
// when the queue is full.
func (w *CleanupWorker) Enqueue(folder string) bool {
	select {
	case w.queue <- folder:
		return true
	default:
		w.logger.Error().Str("folder", folder).Msg("cleanup queue full, folder left behind")
		w.metrics.CleanupAbandoned()
		return false
	}
}

func (w *CleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Int("max_attempts", w.maxAttempts).Msg("cleanup worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.drainQueue()
			for folder := range w.pending {
				w.logger.Warn().Str("folder", folder).Msg("cleanup worker stopped with folder pending")
			}
			return
		case folder := <-w.queue:
			w.add(folder)
		case <-ticker.C:
			w.retry(ctx)
		}
	}
}

func (w *CleanupWorker) add(folder string) {
	if _, ok := w.pending[folder]; !ok {
		w.pending[folder] = 0
	}
}

func (w *CleanupWorker) drainQueue() {
	for {
		select {
		case folder := <-w.queue:
			w.add(folder)
		default:
			return
		}
	}
}

func (w *CleanupWorker) retry(ctx context.Context) {
	for folder, attempts := range w.pending {
		err := gateway.RemoveFolder(ctx, w.images, folder)
		if err == nil {
			delete(w.pending, folder)
			w.logger.Info().Str("folder", folder).Msg("orphaned images removed")
			continue
		}

		attempts++
		if attempts >= w.maxAttempts {
			delete(w.pending, folder)
			w.metrics.CleanupAbandoned()
			w.logger.Error().Err(err).Str("folder", folder).Int("attempts", attempts).Msg("giving up on image cleanup")
			continue
		}

		w.pending[folder] = attempts
		w.logger.Warn().Err(err).Str("folder", folder).Int("attempts", attempts).Msg("image cleanup failed, will retry")
	}
}
