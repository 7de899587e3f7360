package cover

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bookexchange/covers/internal/response"
)

// Handler holds HTTP handlers for cover URL endpoints.
type Handler struct {
	resolver *Resolver
	log      *zap.Logger
}

// NewHandler creates a new cover Handler.
func NewHandler(resolver *Resolver, log *zap.Logger) *Handler {
	return &Handler{resolver: resolver, log: log}
}

type urlData struct {
	Preset string `json:"preset" example:"cover"`
	URL    string `json:"url"    example:"//cloudinary-a.akamaihd.net/demo/image/upload/c_pad,e_vibrance:100,h_355,w_275/abc123"`
}

// SiteURL returns middleware that records the public site root in the request
// context. When siteURL is empty the root is taken from the request's Host and
// X-Forwarded-Proto only if trustRequest is set; otherwise placeholders stay
// site-relative.
func SiteURL(siteURL string, trustRequest bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			base := siteURL
			if base == "" && trustRequest {
				base = requestSiteURL(r)
			}
			if base != "" {
				r = r.WithContext(WithSiteURL(r.Context(), base))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestSiteURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// GetAll godoc
//
//	@Summary		Get all cover URLs
//	@Description	Returns the URL of every preset for a book image. Images that are not approved resolve to placeholder images.
//	@Tags			covers
//	@Produce		json
//	@Param			imageKey	path		string	true	"Image key"
//	@Success		200			{object}	response.Envelope{data=URLs}
//	@Failure		404			{object}	response.Envelope
//	@Failure		503			{object}	response.Envelope
//	@Router			/covers/{imageKey} [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "imageKey")

	urls, err := h.resolver.All(r.Context(), key)
	if err != nil {
		h.writeError(w, key, err)
		return
	}
	response.OK(w, urls)
}

// GetPreset godoc
//
//	@Summary		Get one cover URL
//	@Description	Returns the URL of a book image rendered with one preset.
//	@Tags			covers
//	@Produce		json
//	@Param			imageKey	path		string	true	"Image key"
//	@Param			preset		path		string	true	"Preset"	Enums(background-small, background-large, cover, preview)
//	@Success		200			{object}	response.Envelope{data=urlData}
//	@Failure		400			{object}	response.Envelope
//	@Failure		404			{object}	response.Envelope
//	@Failure		503			{object}	response.Envelope
//	@Router			/covers/{imageKey}/{preset} [get]
func (h *Handler) GetPreset(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "imageKey")

	preset, err := PresetByName(chi.URLParam(r, "preset"))
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	url, err := h.resolver.Resolve(r.Context(), preset, key)
	if err != nil {
		h.writeError(w, key, err)
		return
	}
	response.OK(w, urlData{Preset: preset.Name, URL: url})
}

// Redirect godoc
//
//	@Summary		Redirect to a cover image
//	@Description	Sends the browser to the resolved image so the endpoint can be used directly as an image source.
//	@Tags			covers
//	@Param			preset		path		string	true	"Preset"	Enums(background-small, background-large, cover, preview)
//	@Param			imageKey	path		string	true	"Image key"
//	@Success		302
//	@Header			302	{string}	Location	"Resolved CDN or placeholder URL"
//	@Failure		400	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Failure		503	{object}	response.Envelope
//	@Router			/images/{preset}/{imageKey} [get]
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "imageKey")

	preset, err := PresetByName(chi.URLParam(r, "preset"))
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	url, err := h.resolver.Resolve(r.Context(), preset, key)
	if err != nil {
		h.writeError(w, key, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func (h *Handler) writeError(w http.ResponseWriter, key string, err error) {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		response.NotFound(w, "image not found")
	case errors.Is(err, ErrConfigurationMissing):
		h.log.Error("image service configuration missing")
		response.Unavailable(w, "image service not configured")
	case errors.Is(err, ErrStoreUnavailable):
		h.log.Error("image store unavailable", zap.String("image_key", key), zap.Error(err))
		response.Unavailable(w, "image store unavailable")
	default:
		h.log.Error("resolve image url", zap.String("image_key", key), zap.Error(err))
		response.InternalError(w)
	}
}
