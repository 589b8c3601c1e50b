// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/logger"
)

// New returns the [ImageStore] selected by cfg.Backend.
func New(ctx context.Context, cfg config.Images, logger *logger.Logger) (ImageStore, error) {
	switch cfg.Backend {
	case config.ImagesBackendCloudinary:
		return NewCloudinaryStore(cfg.Cloudinary, logger)
	case config.ImagesBackendMinIO:
		return NewMinIOStore(ctx, cfg.MinIO, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// RemoveFolder deletes every image under folder, then the folder itself.
func RemoveFolder(ctx context.Context, images ImageStore, folder string) error {
	if err := images.DeleteByPrefix(ctx, folder); err != nil {
		return fmt.Errorf("delete images under %s: %w", folder, err)
	}
	if err := images.DeleteFolder(ctx, folder); err != nil {
		return fmt.Errorf("delete folder %s: %w", folder, err)
	}
	return nil
}

// OfferFolder is the folder holding the pictures of offer id.
func OfferFolder(root, id string) string {
	return root + "/offers/" + id
}

// UserFolder is the folder holding the avatar of user id.
func UserFolder(root, id string) string {
	return root + "/users/" + id
}
