package gateway

import (
	"context"
	"fmt"
	"io"
	"strings"

	"translation-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOStore serves model artifacts from an S3-compatible bucket.
type MinIOStore struct {
	client *minio.Client
	bucket string
	logger *logrus.Logger
}

func NewMinIOStore(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOStore, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO artifact store initialized")

	store := &MinIOStore{
		client: minioClient,
		bucket: cfg.BucketName,
		logger: logger,
	}

	if err := store.checkBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Artifact bucket check failed, model loads will fail until it is reachable")
	}

	return store, nil
}

func (s *MinIOStore) checkBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}
	return nil
}

// Open stats the object first so a missing key fails here rather than on
// the first Read.
func (s *MinIOStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	key = strings.TrimPrefix(key, "/")

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get artifact %s: %w", key, err)
	}

	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, fmt.Errorf("failed to stat artifact %s: %w", key, err)
	}

	s.logger.WithFields(logrus.Fields{
		"bucket": s.bucket,
		"key":    key,
		"size":   info.Size,
	}).Debug("Fetched model artifact")

	return obj, nil
}
