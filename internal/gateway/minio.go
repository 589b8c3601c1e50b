// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/utils"
	"github.com/MKhiriev/go-vinted/models"
)

// objectClient is the subset of *minio.Client used by minioStore.
type objectClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError
}

type minioStore struct {
	client    objectClient
	bucket    string
	publicURL string
	uuid      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewMinIOStore constructs an [ImageStore] backed by an S3-compatible
// bucket, creating the bucket when it does not exist yet. Folders map to key
// prefixes, so DeleteFolder has nothing to do.
func NewMinIOStore(ctx context.Context, cfg config.MinIO, logger *logger.Logger) (ImageStore, error) {
	logger.Info().Str("endpoint", cfg.Endpoint).Str("bucket", cfg.Bucket).Msg("initializing minio image store")

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.Endpoint, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to make bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info().Str("bucket", cfg.Bucket).Msg("bucket created")
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = client.EndpointURL().String() + "/" + cfg.Bucket
	}

	return newMinIOStore(client, cfg.Bucket, publicURL, logger), nil
}

func newMinIOStore(client objectClient, bucket, publicURL string, logger *logger.Logger) *minioStore {
	return &minioStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		uuid:      utils.NewUUIDGenerator(),
		logger:    logger.Component("minio"),
	}
}

// Upload implements [ImageStore]. The object key is folder/publicID, or
// folder/<uuid><ext> when publicID is empty.
func (m *minioStore) Upload(ctx context.Context, file models.UploadFile, folder, publicID string) (models.Image, error) {
	if len(file.Data) == 0 {
		return models.Image{}, ErrEmptyFile
	}

	name := publicID
	if name == "" {
		name = m.uuid.Generate() + filepath.Ext(file.Filename)
	}
	key := path.Join(folder, name)

	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(file.Data), int64(len(file.Data)), minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioStore.Upload").Str("key", key).Msg("PutObject failed")
		return models.Image{}, fmt.Errorf("%w: put object %s: %w", ErrRemoteRequestFailed, key, err)
	}

	return models.Image{PublicID: key, URL: m.objectURL(key), Folder: folder}, nil
}

func (m *minioStore) Destroy(ctx context.Context, publicID string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("%w: remove object %s: %w", ErrRemoteRequestFailed, publicID, err)
	}

	return nil
}

// DeleteByPrefix implements [ImageStore] by streaming the listing into a
// bulk remove.
func (m *minioStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	objects := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true})

	var listErr error
	toRemove := make(chan minio.ObjectInfo)
	go func() {
		defer close(toRemove)
		for object := range objects {
			if object.Err != nil {
				listErr = object.Err
				continue
			}
			toRemove <- object
		}
	}()

	var errs []error
	for removeErr := range m.client.RemoveObjects(ctx, m.bucket, toRemove, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("remove %s: %w", removeErr.ObjectName, removeErr.Err))
	}
	if listErr != nil {
		errs = append(errs, fmt.Errorf("list %s: %w", prefix, listErr))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrRemoteRequestFailed, errors.Join(errs...))
	}

	return nil
}

func (m *minioStore) DeleteFolder(context.Context, string) error {
	return nil
}

func (m *minioStore) objectURL(key string) string {
	return m.publicURL + "/" + (&url.URL{Path: key}).EscapedPath()
}
