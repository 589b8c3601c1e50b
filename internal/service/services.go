// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vinted/internal/broker"
	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/gateway"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/metrics"
	"github.com/MKhiriev/go-vinted/internal/store"
	"github.com/MKhiriev/go-vinted/models"
)

type Services struct {
	AuthService    AuthService
	OfferService   OfferService
	AppInfoService AppInfoService
}

// Dependencies are the collaborators shared by every service.
// Cleanup, Publisher and Metrics may be nil.
type Dependencies struct {
	Storages   *store.Storages
	Images     gateway.ImageStore
	Cleanup    CleanupQueue
	Publisher  broker.Publisher
	Metrics    *metrics.Metrics
	ImagesRoot string

	// Build is served by AppInfoService.
	Build models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(deps, cfg.App.PasswordHasher, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    authService,
		OfferService:   NewOfferService(deps, cfg.App.MaxPageSize, logger),
		AppInfoService: appInfoService,
	}, nil
}

// removeFolder is the compensating action of a failed write. It runs even
// when the request context is already cancelled.
func removeFolder(ctx context.Context, images gateway.ImageStore, cleanup CleanupQueue, folder string) {
	ctx = context.WithoutCancel(ctx)
	if err := gateway.RemoveFolder(ctx, images, folder); err != nil {
		logger.FromContext(ctx).Err(err).Str("folder", folder).Msg("compensating cleanup failed, deferring to worker")
		if cleanup != nil {
			cleanup.Enqueue(folder)
		}
	}
}

// publish sends a best effort event.
func publish(ctx context.Context, publisher broker.Publisher, subject string, event any) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, subject, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("subject", subject).Msg("event not published")
	}
}
