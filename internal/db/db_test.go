package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file in migrations: %s", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestBooksMigrationDeclaresEveryState(t *testing.T) {
	b, err := fs.ReadFile(migrationsFS, "migrations/000002_create_books.up.sql")
	require.NoError(t, err)

	for _, s := range []string{"APPROVED", "PENDING_APPROVAL", "INAPPROPRIATE", "UNAVAILABLE"} {
		assert.Contains(t, string(b), "'"+s+"'")
	}
}

func TestApisMigrationRejectsBlankCloudName(t *testing.T) {
	b, err := fs.ReadFile(migrationsFS, "migrations/000001_create_apis.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(b), "CHECK (btrim(cloudinary_cloud_name) <> '')")
}
