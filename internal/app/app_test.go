package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/venue-insight/internal/config"
	"github.com/riskibarqy/venue-insight/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/venue-insight/internal/platform/cache"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "venue-insight-api",
		HTTPAddr:           "127.0.0.1:0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		VenueLoadDelay:     10 * time.Millisecond,
		UploadDelay:        10 * time.Millisecond,
		UploadResetDelay:   10 * time.Millisecond,
		UploadMaxBytes:     5 * 1024 * 1024,
		WarmupWorkers:      2,
		MetricsEnabled:     true,
	}
}

func TestNew_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	if _, err := New(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestApp_StartServeShutdown(t *testing.T) {
	application, err := New(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	application.Start(context.Background())

	cases := []struct {
		path string
		want int
	}{
		{path: "/healthz", want: http.StatusOK},
		{path: "/v1/venues", want: http.StatusOK},
		{path: "/v1/venues/wankhede/insights", want: http.StatusOK},
		{path: "/v1/session/venue", want: http.StatusOK},
		{path: "/metrics", want: http.StatusOK},
		{path: "/docs", want: http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rec.Code != tc.want {
			t.Fatalf("unexpected status for %s: got=%d want=%d", tc.path, rec.Code, tc.want)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := application.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestNewRepositories_CachedReadsMatchMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dataset := memory.SeedDataset()
	plain := NewRepositories(dataset, nil)
	cached := NewRepositories(dataset, cache.NewStore(time.Minute))

	plainMatches, plainFound, err := plain.Matches.ListByVenue(ctx, memory.VenueIDWankhede)
	if err != nil {
		t.Fatalf("plain matches: %v", err)
	}
	for i := 0; i < 2; i++ {
		got, found, err := cached.Matches.ListByVenue(ctx, memory.VenueIDWankhede)
		if err != nil {
			t.Fatalf("cached matches: %v", err)
		}
		if found != plainFound || len(got) != len(plainMatches) {
			t.Fatalf("unexpected cached matches: found=%v len=%d want found=%v len=%d", found, len(got), plainFound, len(plainMatches))
		}
	}

	_, found, err := cached.Summaries.GetByVenue(ctx, "atlantis")
	if err != nil {
		t.Fatalf("cached summary: %v", err)
	}
	if found {
		t.Fatalf("expected unknown venue to stay not found through the cache")
	}
}
