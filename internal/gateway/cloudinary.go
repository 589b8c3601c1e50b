// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"

	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/models"
)

const (
	destroyResultOK       = "ok"
	destroyResultNotFound = "not found"
)

// cloudinaryAPI is the part of the Cloudinary SDK the store calls.
type cloudinaryAPI interface {
	Upload(ctx context.Context, file any, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
	DeleteAssetsByPrefix(ctx context.Context, params admin.DeleteAssetsByPrefixParams) (*admin.DeleteAssetsResult, error)
	DeleteFolder(ctx context.Context, params admin.DeleteFolderParams) (*admin.DeleteFolderResult, error)
}

type sdkClient struct {
	cld *cloudinary.Cloudinary
}

func (s sdkClient) Upload(ctx context.Context, file any, params uploader.UploadParams) (*uploader.UploadResult, error) {
	return s.cld.Upload.Upload(ctx, file, params)
}

func (s sdkClient) Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	return s.cld.Upload.Destroy(ctx, params)
}

func (s sdkClient) DeleteAssetsByPrefix(ctx context.Context, params admin.DeleteAssetsByPrefixParams) (*admin.DeleteAssetsResult, error) {
	return s.cld.Admin.DeleteAssetsByPrefix(ctx, params)
}

func (s sdkClient) DeleteFolder(ctx context.Context, params admin.DeleteFolderParams) (*admin.DeleteFolderResult, error) {
	return s.cld.Admin.DeleteFolder(ctx, params)
}

type cloudinaryStore struct {
	client cloudinaryAPI
	logger *logger.Logger
}

// NewCloudinaryStore constructs an [ImageStore] backed by a Cloudinary
// account. The SDK is built from explicit credentials, never from the
// CLOUDINARY_URL environment variable.
func NewCloudinaryStore(cfg config.Cloudinary, logger *logger.Logger) (ImageStore, error) {
	conf, err := cloudinaryConfiguration(cfg)
	if err != nil {
		return nil, err
	}

	cld, err := cloudinary.NewFromConfiguration(*conf)
	if err != nil {
		return nil, fmt.Errorf("error creating cloudinary client: %w", err)
	}

	return newCloudinaryStore(sdkClient{cld: cld}, logger), nil
}

func newCloudinaryStore(client cloudinaryAPI, logger *logger.Logger) *cloudinaryStore {
	return &cloudinaryStore{
		client: client,
		logger: logger.Component("cloudinary"),
	}
}

func cloudinaryConfiguration(cfg config.Cloudinary) (*cldconfig.Configuration, error) {
	conf, err := cldconfig.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("invalid cloudinary credentials: %w", err)
	}

	if cfg.BaseURL != "" {
		prefix, err := normalizeBaseURL(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid cloudinary base url: %w", err)
		}
		conf.API.UploadPrefix = prefix
	}
	if seconds := int64(cfg.Timeout.Seconds()); seconds > 0 {
		conf.API.Timeout = seconds
	}

	return conf, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [ImageStore]. A publicID overwrites the image stored
// under that name.
func (c *cloudinaryStore) Upload(ctx context.Context, file models.UploadFile, folder, publicID string) (models.Image, error) {
	if len(file.Data) == 0 {
		return models.Image{}, ErrEmptyFile
	}

	params := uploader.UploadParams{Folder: folder}
	if publicID != "" {
		params.PublicID = publicID
		params.Overwrite = api.Bool(true)
	}

	result, err := c.client.Upload(ctx, bytes.NewReader(file.Data), params)
	if err = remoteError("upload", err, errorMessage(result)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*cloudinaryStore.Upload").Str("folder", folder).Msg("upload rejected")
		return models.Image{}, err
	}

	return models.Image{PublicID: result.PublicID, URL: result.SecureURL, Folder: folder}, nil
}

// Destroy implements [ImageStore]. A "not found" result counts as success.
func (c *cloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	result, err := c.client.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err = remoteError("destroy", err, errorMessage(result)); err != nil {
		return err
	}

	if result.Result != destroyResultOK && result.Result != destroyResultNotFound {
		return fmt.Errorf("%w: destroy %s: %s", ErrRemoteRequestFailed, publicID, result.Result)
	}

	return nil
}

// DeleteByPrefix implements [ImageStore] through the admin API.
func (c *cloudinaryStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	result, err := c.client.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{prefix},
	})

	return remoteError("delete resources", err, errorMessage(result))
}

// DeleteFolder implements [ImageStore] through the admin API.
func (c *cloudinaryStore) DeleteFolder(ctx context.Context, folder string) error {
	result, err := c.client.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: folder})

	if err = remoteError("delete folder", err, errorMessage(result)); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	return nil
}
