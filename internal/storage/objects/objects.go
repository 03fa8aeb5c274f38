// Package objects stores waste report images in a MinIO (S3-compatible)
// bucket.
package objects

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/VIT-EcoTrack/EcoTrack/internal/config"
	"github.com/VIT-EcoTrack/EcoTrack/internal/logger"
)

// Store wraps a MinIO client bound to a single bucket
type Store struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
	log      *log.Logger
}

// New creates a store and makes sure the bucket exists
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	log := logger.Storage()

	client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	store := &Store{
		client:   client,
		bucket:   cfg.Storage.Bucket,
		endpoint: cfg.Storage.Endpoint,
		useSSL:   cfg.Storage.UseSSL,
		log:      log,
	}

	if err := store.ensureBucket(ctx); err != nil {
		return nil, err
	}

	log.Info("Object store ready", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.Bucket)
	return store, nil
}

func (s *Store) ensureBucket(ctx context.Context) error {
	err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := s.client.BucketExists(ctx, s.bucket)
		if errBucketExists == nil && exists {
			s.log.Debug("Bucket already exists", "bucket", s.bucket)
			return nil
		}
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Put uploads an object and returns its public URL
func (s *Store) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	s.log.Debug("Uploading object", "bucket", s.bucket, "object", objectName, "size", size)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Error("Failed to upload object", "object", objectName, "error", err)
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	s.log.Info("Object uploaded", "bucket", s.bucket, "object", objectName)
	return s.URL(objectName), nil
}

// URL returns the public URL of an object
func (s *Store) URL(objectName string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName)
}
