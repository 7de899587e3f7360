package moderation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookexchange/covers/internal/cover"
	"github.com/bookexchange/covers/internal/storage"
)

// ErrUnsupportedType is returned for uploads that are not JPEG, PNG or WebP images.
var ErrUnsupportedType = errors.New("unsupported image type")

// ErrEmptyCloudName is returned when an empty cloud name is submitted.
var ErrEmptyCloudName = errors.New("cloud name must not be empty")

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Submission is the result of a cover upload.
type Submission struct {
	Image     *Image `json:"image"`
	SourceURL string `json:"sourceUrl" example:"http://localhost:9000/covers/0b6e6c2e-1f0e-4c55-9f55-1f2d5cb8b6f3"`
}

// Service contains the business logic for cover moderation.
type Service struct {
	repo  *Repository
	store storage.Storage
	cloud *cover.CloudNameCache
	log   *zap.Logger
}

// NewService creates a new moderation Service.
func NewService(repo *Repository, store storage.Storage, cloud *cover.CloudNameCache, log *zap.Logger) *Service {
	return &Service{repo: repo, store: store, cloud: cloud, log: log}
}

// SubmitCover stores an uploaded cover original and registers it as pending approval.
func (s *Service) SubmitCover(ctx context.Context, reader io.Reader, size int64, contentType string) (*Submission, error) {
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if !allowedTypes[contentType] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	key := uuid.NewString()
	if err := s.store.Upload(ctx, key, reader, size, contentType); err != nil {
		return nil, fmt.Errorf("upload original: %w", err)
	}

	img, err := s.repo.CreateImage(ctx, key)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.log.Warn("remove orphaned original", zap.String("image_key", key), zap.Error(delErr))
		}
		return nil, err
	}

	s.log.Info("cover submitted", zap.String("image_key", key), zap.String("content_type", contentType))
	return &Submission{Image: img, SourceURL: s.store.PublicURL(key)}, nil
}

// SetState moves an image to a new moderation state on behalf of actor.
func (s *Service) SetState(ctx context.Context, imageKey string, state cover.State, actor string) (*Image, error) {
	img, err := s.repo.SetState(ctx, imageKey, state)
	if err != nil {
		return nil, err
	}
	s.log.Info("moderation state changed",
		zap.String("image_key", imageKey),
		zap.Stringer("state", state),
		zap.String("actor", actor),
	)
	return img, nil
}

// SetCloudName persists a new cloud name and makes the resolver use it immediately.
func (s *Service) SetCloudName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCloudName
	}
	if err := s.repo.SetCloudName(ctx, name); err != nil {
		return err
	}
	s.cloud.Set(name)
	s.log.Info("cloud name updated", zap.String("cloud_name", name))
	return nil
}

// RefreshCloudName reloads the cloud name from the database.
func (s *Service) RefreshCloudName(ctx context.Context) (string, error) {
	return s.cloud.Refresh(ctx)
}
