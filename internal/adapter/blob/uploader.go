package blob

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader stores generated report files.
type Uploader interface {
	Upload(ctx context.Context, objectKey string, data []byte, contentType string) error
}

// MinioUploader implements Uploader against any S3-compatible endpoint.
type MinioUploader struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

// NewMinioUploader connects to the endpoint and makes sure the bucket exists.
func NewMinioUploader(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool, logger *slog.Logger) (*MinioUploader, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("blob client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
	}
	return &MinioUploader{client: client, bucket: bucket, logger: logger}, nil
}

// Upload writes the object under the given key.
func (u *MinioUploader) Upload(ctx context.Context, objectKey string, data []byte, contentType string) error {
	_, err := u.client.PutObject(ctx, u.bucket, objectKey, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("upload %q: %w", objectKey, err)
	}
	u.logger.Info("report uploaded", slog.String("object", objectKey), slog.Int("bytes", len(data)))
	return nil
}

// NoopUploader is used when no blob endpoint is configured. Files are
// dropped after generation.
type NoopUploader struct {
	logger *slog.Logger
}

// NewNoopUploader constructs NoopUploader.
func NewNoopUploader(logger *slog.Logger) *NoopUploader {
	return &NoopUploader{logger: logger}
}

// Upload logs the would-be upload.
func (u *NoopUploader) Upload(ctx context.Context, objectKey string, data []byte, contentType string) error {
	u.logger.Info("blob storage disabled, dropping report file", slog.String("object", objectKey))
	return nil
}
