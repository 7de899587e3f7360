package cover

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resolution outcomes reported to an Observer.
const (
	OutcomeCDN         = "cdn"
	OutcomePlaceholder = "placeholder"
	OutcomeError       = "error"
)

// Observer captures telemetry for URL resolutions.
type Observer interface {
	ObserveResolution(preset, outcome string, duration time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveResolution(string, string, time.Duration) {}

// PrometheusObserver exports resolver metrics to Prometheus.
type PrometheusObserver struct {
	resolutions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewPrometheusObserver registers the resolver metrics with reg.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = "cover"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &PrometheusObserver{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Image URL resolutions by preset and outcome.",
		}, []string{"preset", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resolution_duration_seconds",
			Help:      "Latency of image URL resolutions, including store lookups.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"preset"}),
	}

	if err := reg.Register(o.resolutions); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register resolutions metric: %w", err)
		}
		o.resolutions = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(o.duration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register duration metric: %w", err)
		}
		o.duration = are.ExistingCollector.(*prometheus.HistogramVec)
	}
	return o, nil
}

// ObserveResolution implements Observer.
func (o *PrometheusObserver) ObserveResolution(preset, outcome string, duration time.Duration) {
	o.resolutions.WithLabelValues(preset, outcome).Inc()
	o.duration.WithLabelValues(preset).Observe(duration.Seconds())
}
