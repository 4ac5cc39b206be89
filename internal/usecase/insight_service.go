package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/venue-insight/internal/domain/analytics"
	"github.com/riskibarqy/venue-insight/internal/domain/match"
	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/teamperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/venuesummary"
	"github.com/riskibarqy/venue-insight/internal/platform/cache"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
	"github.com/riskibarqy/venue-insight/internal/platform/metrics"
	"github.com/sourcegraph/conc/pool"
)

const defaultWarmWorkers = 4

// MatchOrder selects how match history is ordered in responses.
type MatchOrder string

const (
	// MatchOrderStored keeps repository insertion order.
	MatchOrderStored MatchOrder = "stored"
	// MatchOrderDate orders newest first.
	MatchOrderDate MatchOrder = "date"
)

func ParseMatchOrder(v string) (MatchOrder, error) {
	switch MatchOrder(strings.ToLower(strings.TrimSpace(v))) {
	case "", MatchOrderStored:
		return MatchOrderStored, nil
	case MatchOrderDate:
		return MatchOrderDate, nil
	default:
		return "", errors.Wrapf(ErrInvalidInput, "unknown match order %q", v)
	}
}

type SummaryResult struct {
	VenueID             string
	Summary             venuesummary.Summary
	InningsDifferential float64
	Found               bool
	Fallback            FallbackPolicy
}

type MatchesResult struct {
	VenueID  string
	Matches  []match.Match
	Outcomes []analytics.MatchOutcome
	Found    bool
	Fallback FallbackPolicy
}

type TeamPerformanceResult struct {
	VenueID  string
	Records  []teamperformance.Record
	Found    bool
	Fallback FallbackPolicy
}

type PlayerPerformanceResult struct {
	VenueID  string
	Records  []playerperformance.Record
	Found    bool
	Fallback FallbackPolicy
}

// ChartsResult is Found when either the team or the player table has an
// entry for the venue.
type ChartsResult struct {
	VenueID string
	Charts  analytics.Charts
	Found   bool
}

// VenueInsights is the bundle attached to a ready venue selection.
type VenueInsights struct {
	VenueID string
	Summary SummaryResult
	Matches MatchesResult
	Charts  ChartsResult
}

type InsightServiceConfig struct {
	DatasetVersion string
	WarmWorkers    int
}

type InsightService struct {
	summaryRepo venuesummary.Repository
	matchRepo   match.Repository
	teamRepo    teamperformance.Repository
	playerRepo  playerperformance.Repository

	charts  *cache.Store
	cfg     InsightServiceConfig
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewInsightService builds the service. A nil chart store disables
// memoization.
func NewInsightService(
	summaryRepo venuesummary.Repository,
	matchRepo match.Repository,
	teamRepo teamperformance.Repository,
	playerRepo playerperformance.Repository,
	charts *cache.Store,
	cfg InsightServiceConfig,
	logger *logging.Logger,
	m *metrics.Metrics,
) *InsightService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.WarmWorkers <= 0 {
		cfg.WarmWorkers = defaultWarmWorkers
	}
	return &InsightService{
		summaryRepo: summaryRepo,
		matchRepo:   matchRepo,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		charts:      charts,
		cfg:         cfg,
		logger:      logger,
		metrics:     m,
	}
}

func (s *InsightService) GetVenueSummary(ctx context.Context, venueID string) (SummaryResult, error) {
	ctx, span := startVenueSpan(ctx, "usecase.InsightService.GetVenueSummary", venueID)
	defer span.End()

	venueID, err := normalizeVenueID(venueID)
	if err != nil {
		return SummaryResult{}, err
	}

	item, exists, err := s.summaryRepo.GetByVenue(ctx, venueID)
	if err != nil {
		return SummaryResult{}, unavailable(err, "get summary venue=%s", venueID)
	}

	summary, fallback := summaryOrDefault(item, exists)
	return SummaryResult{
		VenueID:             venueID,
		Summary:             summary,
		InningsDifferential: analytics.InningsDifferential(summary),
		Found:               exists,
		Fallback:            fallback,
	}, nil
}

func (s *InsightService) GetMatches(ctx context.Context, venueID string, order MatchOrder) (MatchesResult, error) {
	ctx, span := startVenueSpan(ctx, "usecase.InsightService.GetMatches", venueID)
	defer span.End()

	venueID, err := normalizeVenueID(venueID)
	if err != nil {
		return MatchesResult{}, err
	}

	items, exists, err := s.matchRepo.ListByVenue(ctx, venueID)
	if err != nil {
		return MatchesResult{}, unavailable(err, "list matches venue=%s", venueID)
	}

	items, fallback := listOrEmpty(items, exists)
	if order == MatchOrderDate {
		items = analytics.SortMatchesByDate(items)
	}

	return MatchesResult{
		VenueID:  venueID,
		Matches:  items,
		Outcomes: analytics.MatchOutcomes(items),
		Found:    exists,
		Fallback: fallback,
	}, nil
}

func (s *InsightService) GetTeamPerformance(ctx context.Context, venueID string) (TeamPerformanceResult, error) {
	ctx, span := startVenueSpan(ctx, "usecase.InsightService.GetTeamPerformance", venueID)
	defer span.End()

	venueID, err := normalizeVenueID(venueID)
	if err != nil {
		return TeamPerformanceResult{}, err
	}

	items, exists, err := s.teamRepo.ListByVenue(ctx, venueID)
	if err != nil {
		return TeamPerformanceResult{}, unavailable(err, "list team performance venue=%s", venueID)
	}

	items, fallback := listOrEmpty(items, exists)
	return TeamPerformanceResult{VenueID: venueID, Records: items, Found: exists, Fallback: fallback}, nil
}

func (s *InsightService) GetPlayerPerformance(ctx context.Context, venueID string) (PlayerPerformanceResult, error) {
	ctx, span := startVenueSpan(ctx, "usecase.InsightService.GetPlayerPerformance", venueID)
	defer span.End()

	venueID, err := normalizeVenueID(venueID)
	if err != nil {
		return PlayerPerformanceResult{}, err
	}

	items, exists, err := s.playerRepo.ListByVenue(ctx, venueID)
	if err != nil {
		return PlayerPerformanceResult{}, unavailable(err, "list player performance venue=%s", venueID)
	}

	items, fallback := listOrEmpty(items, exists)
	return PlayerPerformanceResult{VenueID: venueID, Records: items, Found: exists, Fallback: fallback}, nil
}

// GetCharts returns the chart projections for a venue, memoized per dataset
// version when a chart store is configured.
func (s *InsightService) GetCharts(ctx context.Context, venueID string) (ChartsResult, error) {
	ctx, span := startVenueSpan(ctx, "usecase.InsightService.GetCharts", venueID)
	defer span.End()

	venueID, err := normalizeVenueID(venueID)
	if err != nil {
		return ChartsResult{}, err
	}

	if s.charts == nil {
		return s.buildCharts(ctx, venueID)
	}

	built := false
	result, err := cache.Load(ctx, s.charts, cache.Key("charts", s.cfg.DatasetVersion, venueID),
		func(ctx context.Context) (ChartsResult, error) {
			built = true
			return s.buildCharts(ctx, venueID)
		})
	if err != nil {
		return ChartsResult{}, err
	}
	s.metrics.ChartCache(!built)
	result.Charts = result.Charts.Clone()
	return result, nil
}

func (s *InsightService) buildCharts(ctx context.Context, venueID string) (ChartsResult, error) {
	teams, teamsFound, err := s.teamRepo.ListByVenue(ctx, venueID)
	if err != nil {
		return ChartsResult{}, unavailable(err, "list team performance venue=%s", venueID)
	}
	players, playersFound, err := s.playerRepo.ListByVenue(ctx, venueID)
	if err != nil {
		return ChartsResult{}, unavailable(err, "list player performance venue=%s", venueID)
	}

	return ChartsResult{
		VenueID: venueID,
		Charts:  analytics.BuildCharts(teams, players),
		Found:   teamsFound || playersFound,
	}, nil
}

// GetVenueInsights fetches the summary, chronological match history and
// charts for a venue in parallel.
func (s *InsightService) GetVenueInsights(ctx context.Context, venueID string) (VenueInsights, error) {
	ctx, span := startVenueSpan(ctx, "usecase.InsightService.GetVenueInsights", venueID)
	defer span.End()

	venueID, err := normalizeVenueID(venueID)
	if err != nil {
		return VenueInsights{}, err
	}

	started := time.Now()
	defer func() { s.metrics.ObserveInsightBuild(time.Since(started)) }()

	out := VenueInsights{VenueID: venueID}
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		res, err := s.GetVenueSummary(ctx, venueID)
		out.Summary = res
		return err
	})
	p.Go(func(ctx context.Context) error {
		res, err := s.GetMatches(ctx, venueID, MatchOrderDate)
		out.Matches = res
		return err
	})
	p.Go(func(ctx context.Context) error {
		res, err := s.GetCharts(ctx, venueID)
		out.Charts = res
		return err
	})
	if err := p.Wait(); err != nil {
		return VenueInsights{}, errors.Wrapf(err, "build insights venue=%s", venueID)
	}

	return out, nil
}

// LoadVenueInsights satisfies the selection controller's loader.
func (s *InsightService) LoadVenueInsights(ctx context.Context, venueID string) (VenueInsights, error) {
	return s.GetVenueInsights(ctx, venueID)
}

// Warm precomputes chart bundles for the given venues on a bounded worker
// pool. Failures are logged and counted, never fatal.
func (s *InsightService) Warm(ctx context.Context, venueIDs []string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InsightService.Warm")
	defer span.End()

	if len(venueIDs) == 0 {
		return 0, nil
	}

	workers := s.cfg.WarmWorkers
	if workers > len(venueIDs) {
		workers = len(venueIDs)
	}
	wp, err := ants.NewPool(workers)
	if err != nil {
		return 0, errors.Wrap(err, "create warm-up worker pool")
	}
	defer wp.Release()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		warmed int
	)
	for _, venueID := range venueIDs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		if err := wp.Submit(func() {
			defer wg.Done()
			if _, err := s.GetCharts(ctx, venueID); err != nil {
				s.logger.WarnContext(ctx, "chart warm-up failed", "venue_id", venueID, "error", err)
				return
			}
			mu.Lock()
			warmed++
			mu.Unlock()
		}); err != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "chart warm-up submit failed", "venue_id", venueID, "error", err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return warmed, errors.Wrap(err, "warm charts")
	}

	s.logger.InfoContext(ctx, "chart warm-up completed", "venues", len(venueIDs), "warmed", warmed)
	return warmed, nil
}

func normalizeVenueID(venueID string) (string, error) {
	venueID = strings.TrimSpace(venueID)
	if venueID == "" {
		return "", errors.Wrap(ErrInvalidInput, "venue id is required")
	}
	return venueID, nil
}
