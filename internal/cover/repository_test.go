package cover

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewRepository(pool), pool
}

func TestRepositoryCloudName(t *testing.T) {
	repo, pool := newMockRepository(t)
	pool.ExpectQuery("SELECT cloudinary_cloud_name FROM apis").
		WillReturnRows(pgxmock.NewRows([]string{"cloudinary_cloud_name"}).AddRow("demo"))

	name, err := repo.CloudName(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "demo", name)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepositoryCloudNameEmptyTable(t *testing.T) {
	repo, pool := newMockRepository(t)
	pool.ExpectQuery("SELECT cloudinary_cloud_name FROM apis").
		WillReturnRows(pgxmock.NewRows([]string{"cloudinary_cloud_name"}))

	_, err := repo.CloudName(context.Background())

	assert.ErrorIs(t, err, ErrConfigurationMissing)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepositoryCloudNameBlank(t *testing.T) {
	for _, blank := range []string{"", "   "} {
		repo, pool := newMockRepository(t)
		pool.ExpectQuery("SELECT cloudinary_cloud_name FROM apis").
			WillReturnRows(pgxmock.NewRows([]string{"cloudinary_cloud_name"}).AddRow(blank))

		_, err := repo.CloudName(context.Background())

		assert.ErrorIs(t, err, ErrConfigurationMissing, "%q", blank)
		assert.NoError(t, pool.ExpectationsWereMet())
	}
}

func TestBlankCloudNameIsNotCached(t *testing.T) {
	repo, pool := newMockRepository(t)
	pool.ExpectQuery("SELECT cloudinary_cloud_name FROM apis").
		WillReturnRows(pgxmock.NewRows([]string{"cloudinary_cloud_name"}).AddRow(""))
	pool.ExpectQuery("SELECT cloudinary_cloud_name FROM apis").
		WillReturnRows(pgxmock.NewRows([]string{"cloudinary_cloud_name"}).AddRow("demo"))
	pool.ExpectQuery("SELECT image_state").
		WithArgs("abc123").
		WillReturnRows(pgxmock.NewRows([]string{"image_state"}).AddRow("APPROVED"))
	r := NewResolver(repo, NewCloudNameCache(repo, nil), Options{})

	url, err := r.BackgroundSmall(context.Background(), "abc123")
	require.ErrorIs(t, err, ErrConfigurationMissing)
	assert.Empty(t, url)

	url, err = r.BackgroundSmall(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "//cloudinary-a.akamaihd.net/demo/image/upload/c_fill,e_vibrance:100,g_north,h_100,w_300/abc123", url)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRepositoryCloudNameQueryFailure(t *testing.T) {
	repo, pool := newMockRepository(t)
	driverErr := errors.New("connection reset")
	pool.ExpectQuery("SELECT cloudinary_cloud_name FROM apis").WillReturnError(driverErr)

	_, err := repo.CloudName(context.Background())

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, driverErr)
}

func TestRepositoryImageState(t *testing.T) {
	for _, want := range States {
		t.Run(want.String(), func(t *testing.T) {
			repo, pool := newMockRepository(t)
			pool.ExpectQuery("SELECT image_state").
				WithArgs("abc123").
				WillReturnRows(pgxmock.NewRows([]string{"image_state"}).AddRow(want.String()))

			got, err := repo.ImageState(context.Background(), "abc123")

			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.NoError(t, pool.ExpectationsWereMet())
		})
	}
}

func TestRepositoryImageStateNotFound(t *testing.T) {
	repo, pool := newMockRepository(t)
	pool.ExpectQuery("SELECT image_state").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"image_state"}))

	_, err := repo.ImageState(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepositoryImageStateUnknownValue(t *testing.T) {
	repo, pool := newMockRepository(t)
	pool.ExpectQuery("SELECT image_state").
		WithArgs("abc").
		WillReturnRows(pgxmock.NewRows([]string{"image_state"}).AddRow("ARCHIVED"))

	_, err := repo.ImageState(context.Background(), "abc")

	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestRepositoryImageStateQueryFailure(t *testing.T) {
	repo, pool := newMockRepository(t)
	pool.ExpectQuery("SELECT image_state").
		WithArgs("abc").
		WillReturnError(errors.New("timeout"))

	_, err := repo.ImageState(context.Background(), "abc")

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
