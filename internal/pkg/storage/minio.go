// Package storage keeps dentist media in an S3 compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/pkg/newrelic"
)

// ObjectAPI is the subset of *minio.Client the store needs
type ObjectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// MinioStore writes objects to one bucket and builds their public URLs
type MinioStore struct {
	api     ObjectAPI
	bucket  string
	baseURL string
}

// NewMinioClient connects to the endpoint and creates the bucket if missing
func NewMinioClient(ctx context.Context, cfg models.StorageConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("Created bucket", logger.String("bucket", cfg.Bucket))
	}
	return client, nil
}

// NewMinioStore wraps api. Public URLs are PublicBaseURL/key, or
// scheme://endpoint/bucket/key when no base URL is configured.
func NewMinioStore(api ObjectAPI, cfg models.StorageConfig) *MinioStore {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return &MinioStore{api: api, bucket: cfg.Bucket, baseURL: base}
}

// Put uploads size bytes from r under key
func (s *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return newrelic.WithExternalSegment(ctx, "minio", "PutObject", s.URL(key), func() error {
		_, err := s.api.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", key, err)
		}
		return nil
	})
}

// Remove deletes key; a missing object is not an error
func (s *MinioStore) Remove(ctx context.Context, key string) error {
	return newrelic.WithExternalSegment(ctx, "minio", "RemoveObject", s.URL(key), func() error {
		if err := s.api.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
		return nil
	})
}

// URL returns the public address of key
func (s *MinioStore) URL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}
