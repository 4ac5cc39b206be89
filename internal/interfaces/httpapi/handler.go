package httpapi

import (
	"context"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
	"github.com/riskibarqy/venue-insight/internal/session/intake"
	"github.com/riskibarqy/venue-insight/internal/session/selection"
	"github.com/riskibarqy/venue-insight/internal/usecase"
)

// maxRequestBodyBytes bounds JSON bodies. File bytes never travel through
// the API, only their metadata.
const maxRequestBodyBytes = 64 << 10

type Handler struct {
	venueService   *usecase.VenueService
	insightService *usecase.InsightService
	selection      *selection.Controller
	intake         *intake.Controller
	logger         *logging.Logger
	validator      *validator.Validate
	origins        originPolicy
}

func NewHandler(
	venueService *usecase.VenueService,
	insightService *usecase.InsightService,
	selectionController *selection.Controller,
	intakeController *intake.Controller,
	allowedOrigins []string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		venueService:   venueService,
		insightService: insightService,
		selection:      selectionController,
		intake:         intakeController,
		logger:         logger.Named("httpapi"),
		validator:      validator.New(validator.WithRequiredStructEnabled()),
		origins:        newOriginPolicy(allowedOrigins),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	_, span := startSpan(ctx, "httpapi.Handler.decodeJSON")
	defer span.End()

	decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.Wrapf(usecase.ErrInvalidInput, "invalid JSON payload: %v", err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return errors.Wrapf(usecase.ErrInvalidInput, "validation failed: %v", err)
	}

	return nil
}
