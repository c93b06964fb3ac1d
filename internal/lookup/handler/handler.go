package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"personnummer/internal/lookup/models"
	"personnummer/pkg/platform/httputil"
	"personnummer/pkg/requestcontext"
)

// Service is the port the handler drives.
type Service interface {
	Lookup(ctx context.Context, raw string) (*models.Details, error)
	Create(ctx context.Context, cmd models.CreateCommand) (*models.Details, error)
	Validate(ctx context.Context, raw string) models.ValidationResult
}

// Handler serves the identity number endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the handler routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/pins/{pin}", h.HandleLookup)
	r.Post("/pins", h.HandleCreate)
	r.Post("/pins/validate", h.HandleValidate)
}

// HandleLookup handles GET /pins/{pin}. The '+' separator may be sent
// literally or as %2B.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pin")
	// chi matches on RawPath when it is set, leaving the param escaped.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(pin); err == nil {
			pin = unescaped
		}
	}

	details, err := h.service.Lookup(r.Context(), pin)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, details)
}

// HandleCreate handles POST /pins.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.CreateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	details, err := h.service.Create(ctx, req.Command())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, details)
}

// HandleValidate handles POST /pins/validate.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.ValidateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.service.Validate(ctx, req.PIN))
}
