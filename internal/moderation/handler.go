package moderation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bookexchange/covers/internal/cover"
	"github.com/bookexchange/covers/internal/middleware"
	"github.com/bookexchange/covers/internal/response"
)

// maxUploadSize caps a cover upload (10 MB).
const maxUploadSize = 10 << 20

// Handler holds HTTP handlers for the moderation admin API.
type Handler struct {
	svc *Service
	log *zap.Logger
}

// NewHandler creates a new moderation Handler.
func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type setStateRequest struct {
	State string `json:"state" example:"APPROVED"`
}

type cloudNameRequest struct {
	CloudName string `json:"cloudName" example:"demo"`
}

type cloudNameData struct {
	CloudName string `json:"cloudName" example:"demo"`
}

// SetState godoc
//
//	@Summary		Change moderation state
//	@Description	Moves a book image to APPROVED, PENDING_APPROVAL, INAPPROPRIATE or UNAVAILABLE.
//	@Tags			moderation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			imageKey	path		string			true	"Image key"
//	@Param			request		body		setStateRequest	true	"New state"
//	@Success		200			{object}	response.Envelope{data=Image}
//	@Failure		400			{object}	response.Envelope
//	@Failure		401			{object}	response.Envelope
//	@Failure		404			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/admin/covers/{imageKey}/state [patch]
func (h *Handler) SetState(w http.ResponseWriter, r *http.Request) {
	var req setStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	state, err := cover.ParseState(req.State)
	if err != nil {
		response.BadRequest(w, "state must be one of: APPROVED, PENDING_APPROVAL, INAPPROPRIATE, UNAVAILABLE")
		return
	}

	key := chi.URLParam(r, "imageKey")
	img, err := h.svc.SetState(r.Context(), key, state, middleware.Subject(r.Context()))
	if errors.Is(err, cover.ErrRecordNotFound) {
		response.NotFound(w, "image not found")
		return
	}
	if err != nil {
		h.log.Error("set moderation state", zap.String("image_key", key), zap.Error(err))
		response.InternalError(w)
		return
	}

	response.OK(w, img)
}

// SubmitCover godoc
//
//	@Summary		Upload a cover original
//	@Description	Stores the original in object storage and registers it as PENDING_APPROVAL. Max 10 MB; JPEG, PNG or WebP.
//	@Tags			moderation
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file	formData	file	true	"Cover image"
//	@Success		201		{object}	response.Envelope{data=Submission}
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/admin/covers [post]
func (h *Handler) SubmitCover(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	sub, err := h.svc.SubmitCover(r.Context(), file, header.Size, header.Header.Get("Content-Type"))
	if errors.Is(err, ErrUnsupportedType) {
		response.BadRequest(w, "only JPEG, PNG and WebP images are accepted")
		return
	}
	if err != nil {
		h.log.Error("submit cover", zap.Error(err))
		response.InternalError(w)
		return
	}

	response.Created(w, sub)
}

// SetCloudName godoc
//
//	@Summary		Set the image service cloud name
//	@Description	Persists the cloud name used in generated CDN URLs and applies it immediately.
//	@Tags			moderation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		cloudNameRequest	true	"Cloud name"
//	@Success		200		{object}	response.Envelope{data=cloudNameData}
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/admin/cloud-name [put]
func (h *Handler) SetCloudName(w http.ResponseWriter, r *http.Request) {
	var req cloudNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	err := h.svc.SetCloudName(r.Context(), req.CloudName)
	if errors.Is(err, ErrEmptyCloudName) {
		response.BadRequest(w, err.Error())
		return
	}
	if err != nil {
		h.log.Error("set cloud name", zap.Error(err))
		response.InternalError(w)
		return
	}

	response.OK(w, cloudNameData{CloudName: strings.TrimSpace(req.CloudName)})
}

// RefreshCloudName godoc
//
//	@Summary		Reload the cloud name
//	@Description	Re-reads the cloud name from the database, replacing the in-process value.
//	@Tags			moderation
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.Envelope{data=cloudNameData}
//	@Failure		401	{object}	response.Envelope
//	@Failure		503	{object}	response.Envelope
//	@Router			/admin/cloud-name/refresh [post]
func (h *Handler) RefreshCloudName(w http.ResponseWriter, r *http.Request) {
	name, err := h.svc.RefreshCloudName(r.Context())
	if errors.Is(err, cover.ErrConfigurationMissing) {
		response.Unavailable(w, "image service not configured")
		return
	}
	if err != nil {
		h.log.Error("refresh cloud name", zap.Error(err))
		response.Unavailable(w, "image store unavailable")
		return
	}

	response.OK(w, cloudNameData{CloudName: name})
}
