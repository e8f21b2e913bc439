// Package storage persists uploaded audio in object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BlobStore stores uploaded audio blobs and hands back durable URLs.
type BlobStore interface {
	Upload(ctx context.Context, reader io.Reader, size int64, key, contentType string) (string, error)
	GetFileURL(key string) string
	Delete(ctx context.Context, key string) error
}

// AudioKey builds the object key for one upload:
// audios/<user_id>/<uuid>_<filename>.
func AudioKey(userID uuid.UUID, filename string) string {
	return fmt.Sprintf("audios/%s/%s_%s", userID, uuid.New(), filename)
}

// MinioConfig holds MinIO connection settings.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioStore implements BlobStore using MinIO.
type MinioStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewMinioStore creates a MinIO-backed store and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioStore{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
		useSSL:   cfg.UseSSL,
	}, nil
}

func (s *MinioStore) Upload(ctx context.Context, reader io.Reader, size int64, key, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"uploaded-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to MinIO: %w", err)
	}
	return s.GetFileURL(key), nil
}

func (s *MinioStore) GetFileURL(key string) string {
	protocol := "http"
	if s.useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.endpoint, s.bucket, key)
}

func (s *MinioStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// MockStore implements BlobStore with local-looking URLs, for tests and
// environments without object storage.
type MockStore struct{}

func NewMockStore() *MockStore {
	return &MockStore{}
}

func (s *MockStore) Upload(ctx context.Context, reader io.Reader, size int64, key, contentType string) (string, error) {
	// Drain so multipart readers behave like a real upload.
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	return s.GetFileURL(key), nil
}

func (s *MockStore) GetFileURL(key string) string {
	return fmt.Sprintf("/storage/%s", key)
}

func (s *MockStore) Delete(ctx context.Context, key string) error {
	return nil
}
