package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Options configures a MinioStorage.
type Options struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	PublicBase string
	UseSSL     bool
}

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
type MinioStorage struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinioStorage creates a MinIO client, ensures the originals bucket exists with
// a public-read policy, and returns a ready-to-use MinioStorage.
func NewMinioStorage(ctx context.Context, opts Options, log *zap.Logger) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", opts.Bucket, err)
		}
		log.Info("created storage bucket", zap.String("bucket", opts.Bucket))
	}

	if err := client.SetBucketPolicy(ctx, opts.Bucket, publicReadPolicy(opts.Bucket)); err != nil {
		return nil, fmt.Errorf("set bucket policy: %w", err)
	}

	return &MinioStorage{
		client:     client,
		bucket:     opts.Bucket,
		publicBase: strings.TrimRight(opts.PublicBase, "/"),
	}, nil
}

// Upload streams reader to the bucket under imageKey. size must be the exact
// byte count, or -1 when unknown. Originals never change under a key, so they
// are served as immutable.
func (s *MinioStorage) Upload(ctx context.Context, imageKey string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, imageKey, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return fmt.Errorf("put cover original %q: %w", imageKey, err)
	}
	return nil
}

// Delete removes the original stored under imageKey.
func (s *MinioStorage) Delete(ctx context.Context, imageKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, imageKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove cover original %q: %w", imageKey, err)
	}
	return nil
}

// PublicURL returns the URL the image CDN fetches the original from.
func (s *MinioStorage) PublicURL(imageKey string) string {
	return publicURL(s.publicBase, imageKey)
}

func publicURL(base, imageKey string) string {
	return base + "/" + strings.TrimLeft(imageKey, "/")
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{
			{
				"Effect":    "Allow",
				"Principal": map[string]any{"AWS": []string{"*"}},
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/*", bucket)},
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
