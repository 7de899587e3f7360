package cover

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// ConfigFetcher reads the image service account name from the configuration store.
type ConfigFetcher interface {
	CloudName(ctx context.Context) (string, error)
}

// CloudNameCache memoises the cloud name for the lifetime of the process.
// A value is fetched on the first successful Get and kept until Refresh or Set.
type CloudNameCache struct {
	fetcher ConfigFetcher
	log     *zap.Logger

	mu     sync.Mutex
	name   string
	loaded bool
}

// NewCloudNameCache creates an empty cache backed by fetcher.
func NewCloudNameCache(fetcher ConfigFetcher, log *zap.Logger) *CloudNameCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &CloudNameCache{fetcher: fetcher, log: log}
}

// Get returns the cached cloud name, loading it on first use.
// Failed loads are not cached.
func (c *CloudNameCache) Get(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.name, nil
	}
	return c.loadLocked(ctx)
}

// Refresh re-reads the cloud name from the store and replaces the cached value.
// On failure the previous value is kept.
func (c *CloudNameCache) Refresh(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loadLocked(ctx)
}

// Set seeds the cache with a known value.
func (c *CloudNameCache) Set(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.name = name
	c.loaded = true
}

func (c *CloudNameCache) loadLocked(ctx context.Context) (string, error) {
	name, err := c.fetcher.CloudName(ctx)
	if err != nil {
		return "", err
	}
	c.name = name
	c.loaded = true
	c.log.Info("cloud name loaded", zap.String("cloud_name", name))
	return name, nil
}
