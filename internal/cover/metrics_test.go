package cover

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusObserverCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := NewPrometheusObserver("test", reg)
	require.NoError(t, err)

	store := &fakeStore{cloudName: "demo", states: map[string]State{
		"ok":      StateApproved,
		"pending": StatePendingApproval,
	}}
	r := NewResolver(store, NewCloudNameCache(store, nil), Options{
		SiteURL:  SiteURLFromContext("https://example.com"),
		Observer: obs,
	})
	ctx := context.Background()

	_, _ = r.Cover(ctx, "ok")
	_, _ = r.Cover(ctx, "pending")
	_, _ = r.Cover(ctx, "missing")

	assert.Equal(t, 1.0, testutil.ToFloat64(obs.resolutions.WithLabelValues("cover", OutcomeCDN)))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.resolutions.WithLabelValues("cover", OutcomePlaceholder)))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.resolutions.WithLabelValues("cover", OutcomeError)))
}

func TestPrometheusObserverReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPrometheusObserver("test", reg)
	require.NoError(t, err)
	second, err := NewPrometheusObserver("test", reg)
	require.NoError(t, err)

	assert.Same(t, first.resolutions, second.resolutions)
}
