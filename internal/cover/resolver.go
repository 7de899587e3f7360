package cover

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bookexchange/covers/internal/config"
)

// StateFetcher reads the moderation state of a book image.
type StateFetcher interface {
	ImageState(ctx context.Context, imageKey string) (State, error)
}

// SiteURLFunc returns the public site root used for placeholder images.
// It is called on every placeholder resolution.
type SiteURLFunc func(ctx context.Context) string

type siteURLKey struct{}

// WithSiteURL stores the site root for the duration of a request.
func WithSiteURL(ctx context.Context, siteURL string) context.Context {
	return context.WithValue(ctx, siteURLKey{}, siteURL)
}

// SiteURLFromContext returns a SiteURLFunc that prefers the site root stored by
// WithSiteURL and falls back to fallback.
func SiteURLFromContext(fallback string) SiteURLFunc {
	return func(ctx context.Context) string {
		if v, ok := ctx.Value(siteURLKey{}).(string); ok && v != "" {
			return v
		}
		return fallback
	}
}

// Options configures a Resolver. Zero values fall back to the defaults in config.
type Options struct {
	CDNHost         string
	PlaceholderPath string
	SiteURL         SiteURLFunc
	Observer        Observer
}

// Resolver builds display URLs for book images.
type Resolver struct {
	states          StateFetcher
	cloud           *CloudNameCache
	cdnHost         string
	placeholderPath string
	siteURL         SiteURLFunc
	observer        Observer
}

// NewResolver creates a Resolver reading states from states and the cloud name from cloud.
func NewResolver(states StateFetcher, cloud *CloudNameCache, opts Options) *Resolver {
	r := &Resolver{
		states:          states,
		cloud:           cloud,
		cdnHost:         opts.CDNHost,
		placeholderPath: strings.Trim(opts.PlaceholderPath, "/"),
		siteURL:         opts.SiteURL,
		observer:        opts.Observer,
	}
	if r.cdnHost == "" {
		r.cdnHost = config.DefaultCDNHost
	}
	if r.placeholderPath == "" {
		r.placeholderPath = config.DefaultPlaceholderPath
	}
	if r.siteURL == nil {
		r.siteURL = SiteURLFromContext("")
	}
	if r.observer == nil {
		r.observer = nopObserver{}
	}
	return r
}

// CheckStatus reports whether imageKey needs a placeholder. When it does, prefix
// is the placeholder URL up to the preset-specific file name.
func (r *Resolver) CheckStatus(ctx context.Context, imageKey string) (prefix string, placeholder bool, err error) {
	state, err := r.states.ImageState(ctx, imageKey)
	if err != nil {
		return "", false, err
	}

	var name string
	switch state {
	case StateApproved:
		return "", false, nil
	case StatePendingApproval:
		name = "pending-"
	case StateInappropriate:
		name = "inappropriate-"
	case StateUnavailable:
		name = "unavailable-"
	default:
		return "", false, fmt.Errorf("%w: %s", ErrUnknownState, state)
	}

	base := strings.TrimRight(r.siteURL(ctx), "/")
	return base + "/" + r.placeholderPath + "/" + name, true, nil
}

// Resolve returns the URL of imageKey rendered with preset.
func (r *Resolver) Resolve(ctx context.Context, preset Preset, imageKey string) (string, error) {
	start := time.Now()
	url, outcome, err := r.resolve(ctx, preset, imageKey)
	r.observer.ObserveResolution(preset.Name, outcome, time.Since(start))
	return url, err
}

func (r *Resolver) resolve(ctx context.Context, preset Preset, imageKey string) (string, string, error) {
	cloudName, err := r.cloud.Get(ctx)
	if err != nil {
		return "", OutcomeError, fmt.Errorf("load cloud name: %w", err)
	}

	prefix, placeholder, err := r.CheckStatus(ctx, imageKey)
	if err != nil {
		return "", OutcomeError, fmt.Errorf("check status of %q: %w", imageKey, err)
	}
	if placeholder {
		return prefix + preset.Placeholder, OutcomePlaceholder, nil
	}

	return "//" + r.cdnHost + "/" + cloudName + "/image/upload/" + preset.Transform + "/" + imageKey, OutcomeCDN, nil
}

// BackgroundSmall returns the small quick-link background for imageKey.
func (r *Resolver) BackgroundSmall(ctx context.Context, imageKey string) (string, error) {
	return r.Resolve(ctx, BackgroundSmall, imageKey)
}

// BackgroundLarge returns the large splash background for imageKey.
func (r *Resolver) BackgroundLarge(ctx context.Context, imageKey string) (string, error) {
	return r.Resolve(ctx, BackgroundLarge, imageKey)
}

// Cover returns the book details cover for imageKey.
func (r *Resolver) Cover(ctx context.Context, imageKey string) (string, error) {
	return r.Resolve(ctx, Cover, imageKey)
}

// CoverPreview returns the search-result preview for imageKey.
func (r *Resolver) CoverPreview(ctx context.Context, imageKey string) (string, error) {
	return r.Resolve(ctx, CoverPreview, imageKey)
}

// URLs holds every preset rendition of one image.
type URLs struct {
	BackgroundSmall string `json:"backgroundSmall"`
	BackgroundLarge string `json:"backgroundLarge"`
	Cover           string `json:"cover"`
	Preview         string `json:"preview"`
}

// All resolves every preset for imageKey.
func (r *Resolver) All(ctx context.Context, imageKey string) (*URLs, error) {
	var (
		u   URLs
		err error
	)
	if u.BackgroundSmall, err = r.BackgroundSmall(ctx, imageKey); err != nil {
		return nil, err
	}
	if u.BackgroundLarge, err = r.BackgroundLarge(ctx, imageKey); err != nil {
		return nil, err
	}
	if u.Cover, err = r.Cover(ctx, imageKey); err != nil {
		return nil, err
	}
	if u.Preview, err = r.CoverPreview(ctx, imageKey); err != nil {
		return nil, err
	}
	return &u, nil
}
