// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway talks to the remote image store that hosts offer pictures
// and user avatars.
//
// The service layer depends only on [ImageStore]. Two implementations ship:
// [NewCloudinaryStore] uses the Cloudinary SDK upload and admin APIs and
// [NewMinIOStore] writes to any S3-compatible bucket. [New] picks one from
// configuration.
package gateway

import (
	"context"

	"github.com/MKhiriev/go-vinted/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/image_store_mock.go -package=mock

// ImageStore uploads and removes images held by a remote store.
type ImageStore interface {
	// Upload stores file under folder. A non-empty publicID names the image
	// inside the folder and overwrites any image with that name; an empty one
	// lets the store pick a unique name.
	Upload(ctx context.Context, file models.UploadFile, folder, publicID string) (models.Image, error)

	// Destroy removes a single image by the public id returned from Upload.
	// Removing an image that does not exist is not an error.
	Destroy(ctx context.Context, publicID string) error

	// DeleteByPrefix removes every image whose public id starts with prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error

	// DeleteFolder removes an empty folder. Removing a missing folder is not
	// an error.
	DeleteFolder(ctx context.Context, folder string) error
}
