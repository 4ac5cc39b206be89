package httpapi

import (
	"net/http"

	"github.com/riskibarqy/venue-insight/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, m *metrics.Metrics, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerVenueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/venues", handler.ListVenues)
	mux.HandleFunc("GET /v1/venues/by-country", handler.ListVenuesByCountry)
	mux.HandleFunc("GET /v1/venues/{venueID}", handler.GetVenue)
	mux.HandleFunc("GET /v1/venues/{venueID}/summary", handler.GetVenueSummary)
	mux.HandleFunc("GET /v1/venues/{venueID}/matches", handler.ListVenueMatches)
	mux.HandleFunc("GET /v1/venues/{venueID}/teams", handler.ListVenueTeams)
	mux.HandleFunc("GET /v1/venues/{venueID}/players", handler.ListVenuePlayers)
	mux.HandleFunc("GET /v1/venues/{venueID}/charts", handler.GetVenueCharts)
	mux.HandleFunc("GET /v1/venues/{venueID}/insights", handler.GetVenueInsights)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/session/venue", handler.GetVenueSelection)
	mux.HandleFunc("POST /v1/session/venue", handler.SelectVenue)
	mux.HandleFunc("POST /v1/session/venue/retry", handler.RetryVenueSelection)
	mux.HandleFunc("GET /v1/session/intake", handler.GetIntake)
	mux.HandleFunc("POST /v1/session/intake/file", handler.SubmitIntakeFile)
	mux.HandleFunc("POST /v1/session/intake/upload", handler.BeginIntakeUpload)
	mux.HandleFunc("POST /v1/session/intake/cancel", handler.CancelIntake)
	mux.HandleFunc("GET /v1/session/events", handler.StreamSessionEvents)
}
