package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	const origin = "https://venue-insight.example.com"

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
		wantNext   bool
	}{
		{name: "configured origin", allowed: []string{origin}, method: http.MethodGet, origin: origin, wantStatus: http.StatusOK, wantAllow: origin, wantNext: true},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: origin, wantStatus: http.StatusNoContent, wantAllow: "*"},
		{name: "unconfigured origin", allowed: []string{"https://allowed.example.com"}, method: http.MethodGet, origin: origin, wantStatus: http.StatusOK, wantNext: true},
		{name: "no origin header", allowed: []string{origin}, method: http.MethodPost, wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/v1/session/venue", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			CORS(tt.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Fatalf("unexpected Access-Control-Allow-Origin: got=%q want=%q", got, tt.wantAllow)
			}
			if called != tt.wantNext {
				t.Fatalf("unexpected next invocation: got=%v want=%v", called, tt.wantNext)
			}
		})
	}
}
