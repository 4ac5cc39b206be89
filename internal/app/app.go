package app

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/venue-insight/internal/config"
	"github.com/riskibarqy/venue-insight/internal/domain/match"
	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/teamperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/venue"
	"github.com/riskibarqy/venue-insight/internal/domain/venuesummary"
	cacherepo "github.com/riskibarqy/venue-insight/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/venue-insight/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/venue-insight/internal/interfaces/httpapi"
	"github.com/riskibarqy/venue-insight/internal/platform/cache"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
	"github.com/riskibarqy/venue-insight/internal/platform/metrics"
	"github.com/riskibarqy/venue-insight/internal/platform/scheduler"
	"github.com/riskibarqy/venue-insight/internal/session/intake"
	"github.com/riskibarqy/venue-insight/internal/session/selection"
	"github.com/riskibarqy/venue-insight/internal/usecase"
	"github.com/sourcegraph/conc"
)

const warmupTimeout = 30 * time.Second

// App owns the HTTP server and the long-running session controllers.
type App struct {
	cfg      config.Config
	logger   *logging.Logger
	server   *http.Server
	metrics  *metrics.Metrics
	insights *usecase.InsightService
	venues   []venue.Venue
	stores   []*cache.Store

	selection *selection.Controller
	intake    *intake.Controller

	stopControllers context.CancelFunc
	running         conc.WaitGroup
}

// Repositories groups the read-only stores the services depend on.
type Repositories struct {
	Venues            venue.Repository
	Summaries         venuesummary.Repository
	Matches           match.Repository
	TeamPerformance   teamperformance.Repository
	PlayerPerformance playerperformance.Repository
}

// NewRepositories builds memory repositories over dataset, wrapped with the
// read-through cache when enabled.
func NewRepositories(dataset memory.Dataset, store *cache.Store) Repositories {
	repos := Repositories{
		Venues:            memory.NewVenueRepository(dataset.Venues),
		Summaries:         memory.NewVenueSummaryRepository(dataset.Summaries),
		Matches:           memory.NewMatchRepository(dataset.Matches),
		TeamPerformance:   memory.NewTeamPerformanceRepository(dataset.TeamPerformance),
		PlayerPerformance: memory.NewPlayerPerformanceRepository(dataset.PlayerPerformance),
	}
	if store == nil {
		return repos
	}

	return Repositories{
		Venues:            cacherepo.NewVenueRepository(repos.Venues, store),
		Summaries:         cacherepo.NewVenueSummaryRepository(repos.Summaries, store),
		Matches:           cacherepo.NewMatchRepository(repos.Matches, store),
		TeamPerformance:   cacherepo.NewTeamPerformanceRepository(repos.TeamPerformance, store),
		PlayerPerformance: cacherepo.NewPlayerPerformanceRepository(repos.PlayerPerformance, store),
	}
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, errors.New("http server addr cannot be empty")
	}

	dataset := memory.SeedDataset()
	if err := dataset.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate seed dataset")
	}

	var (
		repoStore  *cache.Store
		chartStore *cache.Store
	)
	if cfg.CacheEnabled {
		repoStore = cache.NewStore(cfg.CacheTTL)
		chartStore = cache.NewStore(cfg.CacheTTL)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	repos := NewRepositories(dataset, repoStore)
	venueSvc := usecase.NewVenueService(repos.Venues)
	insightSvc := usecase.NewInsightService(
		repos.Summaries,
		repos.Matches,
		repos.TeamPerformance,
		repos.PlayerPerformance,
		chartStore,
		usecase.InsightServiceConfig{
			DatasetVersion: dataset.Version,
			WarmWorkers:    cfg.WarmupWorkers,
		},
		logger.Named("usecase"),
		m,
	)

	sched := scheduler.NewReal()
	selectionCtrl := selection.NewController(insightSvc, sched, selection.Config{
		LoadDelay: cfg.VenueLoadDelay,
	}, logger, m)
	intakeCtrl := intake.NewController(sched, intake.Config{
		UploadDelay: cfg.UploadDelay,
		ResetDelay:  cfg.UploadResetDelay,
		MaxBytes:    cfg.UploadMaxBytes,
	}, logger, m)

	handler := httpapi.NewHandler(venueSvc, insightSvc, selectionCtrl, intakeCtrl, cfg.CORSAllowedOrigins, logger)
	router := httpapi.NewRouter(handler, logger, m, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &App{
		cfg:      cfg,
		logger:   logger,
		metrics:  m,
		insights: insightSvc,
		venues:   dataset.Venues,
		stores:   []*cache.Store{repoStore, chartStore},
		server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		selection: selectionCtrl,
		intake:    intakeCtrl,
	}, nil
}

func (a *App) Server() *http.Server {
	return a.server
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Start launches the session controllers and warms the chart cache in the
// background. It must be called once before serving traffic.
func (a *App) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	a.stopControllers = cancel

	a.running.Go(func() {
		if err := a.selection.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("selection controller stopped", "error", err)
		}
	})
	a.running.Go(func() {
		if err := a.intake.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("intake controller stopped", "error", err)
		}
	})
	if a.cfg.CacheEnabled {
		a.running.Go(func() { a.warm(runCtx) })
		if a.cfg.CacheTTL > 0 {
			a.running.Go(func() { a.sweep(runCtx, a.cfg.CacheTTL) })
		}
	}
}

// sweep drops expired cache entries every interval until ctx is done.
func (a *App) sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, store := range a.stores {
				if store == nil {
					continue
				}
				if removed := store.Purge(); removed > 0 {
					stats := store.Stats()
					a.logger.Debug("cache purged", "removed", removed, "entries", stats.Entries, "hits", stats.Hits, "misses", stats.Misses)
				}
			}
		}
	}
}

func (a *App) warm(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()

	ids := make([]string, 0, len(a.venues))
	for _, v := range a.venues {
		ids = append(ids, v.ID)
	}

	started := time.Now()
	warmed, err := a.insights.Warm(ctx, ids)
	if err != nil {
		a.logger.Warn("chart warmup incomplete", "warmed", warmed, "venues", len(ids), "error", err)
		return
	}
	a.logger.Info("chart warmup finished", "warmed", warmed, "duration_ms", time.Since(started).Milliseconds())
}

// Shutdown drains HTTP traffic, then stops the controllers and waits for
// them to exit.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if a.stopControllers != nil {
		a.stopControllers()
	}

	done := make(chan struct{})
	go func() {
		a.running.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return errors.CombineErrors(err, errors.Wrap(ctx.Err(), "wait for controllers"))
	}
	if err != nil {
		return errors.Wrap(err, "shutdown http server")
	}
	return nil
}
