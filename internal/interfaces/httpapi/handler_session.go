package httpapi

import (
	"net/http"

	"github.com/riskibarqy/venue-insight/internal/session/intake"
)

func (h *Handler) GetVenueSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetVenueSelection")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, toSelectionStateDTO(h.selection.Snapshot()))
}

// SelectVenue answers 202 with the Loading state; readiness is observed via
// GET or the events stream.
func (h *Handler) SelectVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectVenue")
	defer span.End()

	var req selectVenueRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.selection.SelectVenue(ctx, req.VenueID)
	if err != nil {
		h.logger.WarnContext(ctx, "select venue failed", "venue_id", req.VenueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, toSelectionStateDTO(state))
}

func (h *Handler) RetryVenueSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RetryVenueSelection")
	defer span.End()

	state, err := h.selection.Retry(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, toSelectionStateDTO(state))
}

func (h *Handler) GetIntake(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetIntake")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, toIntakeStateDTO(h.intake.Snapshot(), h.intake.MaxBytes()))
}

// SubmitIntakeFile takes the metadata of a locally chosen file. Rejections
// leave the intake state as it was apart from the notice.
func (h *Handler) SubmitIntakeFile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitIntakeFile")
	defer span.End()

	var req submitFileRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.intake.SubmitCandidateFile(ctx, intake.Candidate{
		Name:         req.Name,
		DeclaredType: req.Type,
		SizeBytes:    req.SizeBytes,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toIntakeStateDTO(state, h.intake.MaxBytes()))
}

func (h *Handler) BeginIntakeUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BeginIntakeUpload")
	defer span.End()

	state, err := h.intake.BeginUpload(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, toIntakeStateDTO(state, h.intake.MaxBytes()))
}

func (h *Handler) CancelIntake(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelIntake")
	defer span.End()

	state, err := h.intake.Cancel(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toIntakeStateDTO(state, h.intake.MaxBytes()))
}
