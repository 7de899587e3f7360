// Package moderation manages book images and their moderation states, and the
// image service configuration read by the cover resolver.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bookexchange/covers/internal/cover"
)

// Image is a book image record.
type Image struct {
	ImageKey  string      `json:"imageKey"`
	State     cover.State `json:"state" swaggertype:"string" example:"PENDING_APPROVAL"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ErrAlreadyExists is returned when an image key is already registered.
var ErrAlreadyExists = errors.New("image already exists")

// DB is the subset of pgxpool.Pool used by the repository.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository handles book image and configuration writes.
type Repository struct {
	db DB
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// CreateImage registers a new image awaiting approval.
func (r *Repository) CreateImage(ctx context.Context, imageKey string) (*Image, error) {
	img, err := scanImage(r.db.QueryRow(ctx,
		`INSERT INTO books (image_id, image_state)
		 VALUES ($1, 'PENDING_APPROVAL')
		 RETURNING image_id, image_state::text, created_at, updated_at`,
		imageKey,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create image: %w", err)
	}
	return img, nil
}

// SetState changes the moderation state of an existing image.
func (r *Repository) SetState(ctx context.Context, imageKey string, state cover.State) (*Image, error) {
	img, err := scanImage(r.db.QueryRow(ctx,
		`UPDATE books SET image_state = $2::image_state, updated_at = NOW()
		 WHERE image_id = $1
		 RETURNING image_id, image_state::text, created_at, updated_at`,
		imageKey, state.String(),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, cover.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("set image state: %w", err)
	}
	return img, nil
}

// SetCloudName replaces the cloud name in the first configuration row,
// creating the row when the table is empty.
func (r *Repository) SetCloudName(ctx context.Context, name string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx,
		`UPDATE apis SET cloudinary_cloud_name = $1, updated_at = NOW()
		 WHERE id = (SELECT id FROM apis ORDER BY id LIMIT 1)`,
		name,
	)
	if err != nil {
		return fmt.Errorf("update cloud name: %w", err)
	}

	if tag.RowsAffected() == 0 {
		_, err = tx.Exec(ctx,
			`INSERT INTO apis (cloudinary_cloud_name) VALUES ($1)`,
			name,
		)
		if err != nil {
			return fmt.Errorf("insert cloud name: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func scanImage(row pgx.Row) (*Image, error) {
	var (
		img Image
		raw string
	)
	if err := row.Scan(&img.ImageKey, &raw, &img.CreatedAt, &img.UpdatedAt); err != nil {
		return nil, err
	}
	state, err := cover.ParseState(raw)
	if err != nil {
		return nil, err
	}
	img.State = state
	return &img, nil
}

// isUniqueViolation checks whether an error is a PostgreSQL unique_violation (code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
