package cover

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudNameCacheLoadsOnce(t *testing.T) {
	store := &fakeStore{cloudName: "demo"}
	c := NewCloudNameCache(store, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, err := c.Get(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "demo", name)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.calls())
}

func TestCloudNameCacheDoesNotCacheFailures(t *testing.T) {
	store := &fakeStore{cloudErr: ErrConfigurationMissing}
	c := NewCloudNameCache(store, nil)

	_, err := c.Get(context.Background())
	require.ErrorIs(t, err, ErrConfigurationMissing)

	store.mu.Lock()
	store.cloudErr = nil
	store.cloudName = "demo"
	store.mu.Unlock()

	name, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "demo", name)
	assert.Equal(t, 2, store.calls())
}

func TestCloudNameCacheRefresh(t *testing.T) {
	store := &fakeStore{cloudName: "old"}
	c := NewCloudNameCache(store, nil)
	ctx := context.Background()

	name, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", name)

	store.mu.Lock()
	store.cloudName = "new"
	store.mu.Unlock()

	name, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", name, "stale value persists until refresh")

	name, err = c.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", name)

	name, err = c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", name)
}

func TestCloudNameCacheRefreshKeepsValueOnFailure(t *testing.T) {
	store := &fakeStore{cloudName: "demo"}
	c := NewCloudNameCache(store, nil)
	ctx := context.Background()

	_, err := c.Get(ctx)
	require.NoError(t, err)

	store.mu.Lock()
	store.cloudErr = ErrStoreUnavailable
	store.mu.Unlock()

	_, err = c.Refresh(ctx)
	require.ErrorIs(t, err, ErrStoreUnavailable)

	name, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "demo", name)
}

func TestCloudNameCacheSet(t *testing.T) {
	store := &fakeStore{cloudName: "ignored"}
	c := NewCloudNameCache(store, nil)

	c.Set("seeded")
	name, err := c.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "seeded", name)
	assert.Zero(t, store.calls())
}
