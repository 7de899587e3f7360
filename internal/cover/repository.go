package cover

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool used by the repository.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is the read capability the resolver needs from the database.
type Store interface {
	ConfigFetcher
	StateFetcher
}

var _ Store = (*Repository)(nil)

// Repository reads cover configuration and moderation states from PostgreSQL.
// It never writes.
type Repository struct {
	db Querier
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// CloudName returns the image service account name from the first configuration row.
// A blank name counts as missing configuration.
func (r *Repository) CloudName(ctx context.Context) (string, error) {
	var name string
	err := r.db.QueryRow(ctx,
		`SELECT cloudinary_cloud_name FROM apis ORDER BY id LIMIT 1`,
	).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrConfigurationMissing
	}
	if err != nil {
		return "", fmt.Errorf("%w: get cloud name: %w", ErrStoreUnavailable, err)
	}
	if strings.TrimSpace(name) == "" {
		return "", ErrConfigurationMissing
	}
	return name, nil
}

// ImageState returns the moderation state of the book image with the given key.
func (r *Repository) ImageState(ctx context.Context, imageKey string) (State, error) {
	var raw string
	err := r.db.QueryRow(ctx,
		`SELECT image_state::text FROM books WHERE image_id = $1`,
		imageKey,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrRecordNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: get image state: %w", ErrStoreUnavailable, err)
	}
	return ParseState(raw)
}
