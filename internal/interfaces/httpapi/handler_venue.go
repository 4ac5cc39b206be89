package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/venue-insight/internal/usecase"
)

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	items, err := h.venueService.ListVenues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list venues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toVenueDTOs(items))
}

func (h *Handler) ListVenuesByCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenuesByCountry")
	defer span.End()

	groups, err := h.venueService.ListVenuesByCountry(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list venues by country failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toCountryGroupDTOs(groups))
}

func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span, venueID := startVenueSpan(r, "httpapi.Handler.GetVenue")
	defer span.End()

	item, err := h.venueService.GetVenue(ctx, venueID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toVenueDTO(item))
}

func (h *Handler) GetVenueSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span, venueID := startVenueSpan(r, "httpapi.Handler.GetVenueSummary")
	defer span.End()

	res, err := h.insightService.GetVenueSummary(ctx, venueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get venue summary failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSummaryDTO(res))
}

func (h *Handler) ListVenueMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span, venueID := startVenueSpan(r, "httpapi.Handler.ListVenueMatches")
	defer span.End()

	order, err := usecase.ParseMatchOrder(strings.TrimSpace(r.URL.Query().Get("order")))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err := h.insightService.GetMatches(ctx, venueID, order)
	if err != nil {
		h.logger.WarnContext(ctx, "list venue matches failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchesDTO(res))
}

func (h *Handler) ListVenueTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span, venueID := startVenueSpan(r, "httpapi.Handler.ListVenueTeams")
	defer span.End()

	res, err := h.insightService.GetTeamPerformance(ctx, venueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list venue teams failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamPerformanceListDTO{
		VenueID:  res.VenueID,
		Found:    res.Found,
		Fallback: string(res.Fallback),
		Teams:    toTeamPerformanceDTOs(res.Records),
	})
}

func (h *Handler) ListVenuePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span, venueID := startVenueSpan(r, "httpapi.Handler.ListVenuePlayers")
	defer span.End()

	res, err := h.insightService.GetPlayerPerformance(ctx, venueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list venue players failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPerformanceListDTO{
		VenueID:  res.VenueID,
		Found:    res.Found,
		Fallback: string(res.Fallback),
		Players:  toPlayerPerformanceDTOs(res.Records),
	})
}

func (h *Handler) GetVenueCharts(w http.ResponseWriter, r *http.Request) {
	ctx, span, venueID := startVenueSpan(r, "httpapi.Handler.GetVenueCharts")
	defer span.End()

	res, err := h.insightService.GetCharts(ctx, venueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get venue charts failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toChartsDTO(res))
}

func (h *Handler) GetVenueInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span, venueID := startVenueSpan(r, "httpapi.Handler.GetVenueInsights")
	defer span.End()

	res, err := h.insightService.GetVenueInsights(ctx, venueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get venue insights failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toInsightsDTO(res))
}
