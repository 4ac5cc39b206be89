package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/teamperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/venuesummary"
	"github.com/riskibarqy/venue-insight/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/venue-insight/internal/mocks/domain/match"
	playerperformancemock "github.com/riskibarqy/venue-insight/internal/mocks/domain/playerperformance"
	teamperformancemock "github.com/riskibarqy/venue-insight/internal/mocks/domain/teamperformance"
	venuesummarymock "github.com/riskibarqy/venue-insight/internal/mocks/domain/venuesummary"
	"github.com/riskibarqy/venue-insight/internal/platform/cache"
	"github.com/riskibarqy/venue-insight/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func newSeededInsightService(store *cache.Store) *InsightService {
	return NewInsightService(
		memory.NewVenueSummaryRepository(memory.SeedVenueSummaries()),
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewTeamPerformanceRepository(memory.SeedTeamPerformance()),
		memory.NewPlayerPerformanceRepository(memory.SeedPlayerPerformance()),
		store,
		InsightServiceConfig{DatasetVersion: memory.SeedDatasetVersion, WarmWorkers: 2},
		logging.NewNop(),
		nil,
	)
}

func TestInsightService_GetVenueSummary(t *testing.T) {
	t.Parallel()

	service := newSeededInsightService(nil)

	t.Run("known venue", func(t *testing.T) {
		got, err := service.GetVenueSummary(context.Background(), memory.VenueIDWankhede)
		if err != nil {
			t.Fatalf("get summary: %v", err)
		}
		if !got.Found || got.Fallback != FallbackNone {
			t.Fatalf("unexpected found flags: found=%v fallback=%s", got.Found, got.Fallback)
		}
		if got.Summary.AvgFirstInningsScore != 175.3 || got.Summary.PitchBehavior != venuesummary.PitchBatting {
			t.Fatalf("unexpected summary: %+v", got.Summary)
		}
		if got.InningsDifferential != 13.5 {
			t.Fatalf("unexpected innings differential: got=%v want=13.5", got.InningsDifferential)
		}
	})

	t.Run("unknown venue falls back to default record", func(t *testing.T) {
		got, err := service.GetVenueSummary(context.Background(), "chepauk")
		if err != nil {
			t.Fatalf("get summary: %v", err)
		}
		if got.Found || got.Fallback != FallbackDefaultRecord {
			t.Fatalf("unexpected found flags: found=%v fallback=%s", got.Found, got.Fallback)
		}
		if got.Summary != venuesummary.Default() {
			t.Fatalf("unexpected fallback summary: %+v", got.Summary)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := service.GetVenueSummary(context.Background(), " ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestInsightService_GetMatches(t *testing.T) {
	t.Parallel()

	service := newSeededInsightService(nil)

	got, err := service.GetMatches(context.Background(), memory.VenueIDEdenGardens, MatchOrderStored)
	if err != nil {
		t.Fatalf("get matches: %v", err)
	}
	wantIDs := []string{"m5", "m6", "m7"}
	if len(got.Matches) != len(wantIDs) {
		t.Fatalf("unexpected match count: got=%d want=%d", len(got.Matches), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got.Matches[i].ID != id {
			t.Fatalf("unexpected match at %d: got=%s want=%s", i, got.Matches[i].ID, id)
		}
	}
	if len(got.Outcomes) != 3 || got.Outcomes[2].Winner != "Gujarat Titans" || got.Outcomes[2].BattingFirstWon {
		t.Fatalf("unexpected outcomes: %+v", got.Outcomes)
	}

	empty, err := service.GetMatches(context.Background(), memory.VenueIDLords, MatchOrderDate)
	if err != nil {
		t.Fatalf("get matches: %v", err)
	}
	if empty.Found || empty.Fallback != FallbackEmpty {
		t.Fatalf("unexpected found flags: found=%v fallback=%s", empty.Found, empty.Fallback)
	}
	if empty.Matches == nil || len(empty.Matches) != 0 {
		t.Fatalf("expected empty non-nil matches, got %#v", empty.Matches)
	}
}

func TestParseMatchOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    MatchOrder
		wantErr bool
	}{
		{in: "", want: MatchOrderStored},
		{in: "stored", want: MatchOrderStored},
		{in: " DATE ", want: MatchOrderDate},
		{in: "score", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseMatchOrder(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput for %q, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("unexpected order for %q: got=%s err=%v want=%s", tc.in, got, err, tc.want)
		}
	}
}

func TestInsightService_TeamAndPlayerFallback(t *testing.T) {
	t.Parallel()

	service := newSeededInsightService(nil)

	teams, err := service.GetTeamPerformance(context.Background(), memory.VenueIDMCG)
	if err != nil {
		t.Fatalf("get team performance: %v", err)
	}
	if teams.Found || teams.Records == nil || len(teams.Records) != 0 {
		t.Fatalf("expected empty fallback, got found=%v records=%#v", teams.Found, teams.Records)
	}

	players, err := service.GetPlayerPerformance(context.Background(), memory.VenueIDEdenGardens)
	if err != nil {
		t.Fatalf("get player performance: %v", err)
	}
	if !players.Found || len(players.Records) != 3 {
		t.Fatalf("unexpected players: found=%v count=%d", players.Found, len(players.Records))
	}
}

func TestInsightService_GetCharts(t *testing.T) {
	t.Parallel()

	service := newSeededInsightService(cache.NewStore(time.Minute))

	got, err := service.GetCharts(context.Background(), memory.VenueIDWankhede)
	if err != nil {
		t.Fatalf("get charts: %v", err)
	}
	if !got.Found {
		t.Fatalf("expected charts to be found")
	}
	if got.Charts.TeamWinRates[0].WinPercentage != 70 {
		t.Fatalf("unexpected win rate: got=%d want=70", got.Charts.TeamWinRates[0].WinPercentage)
	}

	wantBatsmen := []string{"Rohit Sharma", "Virat Kohli", "MS Dhoni", "Jasprit Bumrah"}
	for i, name := range wantBatsmen {
		if got.Charts.TopBatsmen[i].Player != name {
			t.Fatalf("unexpected batsman at %d: got=%s want=%s", i, got.Charts.TopBatsmen[i].Player, name)
		}
	}
	if len(got.Charts.TopBowlers) != 1 || got.Charts.TopBowlers[0].Player != "Jasprit Bumrah" {
		t.Fatalf("unexpected bowlers: %+v", got.Charts.TopBowlers)
	}

	unknown, err := service.GetCharts(context.Background(), memory.VenueIDLords)
	if err != nil {
		t.Fatalf("get charts: %v", err)
	}
	if unknown.Found || len(unknown.Charts.TeamWinRates) != 0 {
		t.Fatalf("expected empty charts for lords, got %+v", unknown)
	}
}

func TestInsightService_GetCharts_CallerMutationDoesNotReachCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := newSeededInsightService(cache.NewStore(time.Minute))

	first, err := service.GetCharts(ctx, memory.VenueIDEdenGardens)
	if err != nil {
		t.Fatalf("get charts: %v", err)
	}
	first.Charts.TopBowlers[0].Player = "mutated"
	first.Charts.TeamWinRates = first.Charts.TeamWinRates[:0]

	second, err := service.GetCharts(ctx, memory.VenueIDEdenGardens)
	if err != nil {
		t.Fatalf("get charts again: %v", err)
	}
	if second.Charts.TopBowlers[0].Player != "Andre Russell" {
		t.Fatalf("cached bowlers mutated: %+v", second.Charts.TopBowlers)
	}
	if len(second.Charts.TeamWinRates) != 4 {
		t.Fatalf("unexpected cached win rates: got=%d want=4", len(second.Charts.TeamWinRates))
	}
}

func TestInsightService_GetCharts_MemoizedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teamperformancemock.NewRepository(t)
	playerRepo := playerperformancemock.NewRepository(t)

	teamRepo.
		On("ListByVenue", mock.Anything, "wankhede").
		Return([]teamperformance.Record{{Team: "Mumbai Indians", Matches: 4, Wins: 1, Losses: 3}}, true, nil).
		Once()
	playerRepo.
		On("ListByVenue", mock.Anything, "wankhede").
		Return([]playerperformance.Record{}, false, nil).
		Once()

	store := cache.NewStore(time.Minute)
	service := NewInsightService(
		venuesummarymock.NewRepository(t),
		matchmock.NewRepository(t),
		teamRepo,
		playerRepo,
		store,
		InsightServiceConfig{DatasetVersion: "v1"},
		logging.NewNop(),
		nil,
	)

	for i := 0; i < 3; i++ {
		got, err := service.GetCharts(ctx, "wankhede")
		if err != nil {
			t.Fatalf("get charts #%d: %v", i, err)
		}
		if got.Charts.TeamWinRates[0].WinPercentage != 25 {
			t.Fatalf("unexpected win rate: got=%d want=25", got.Charts.TeamWinRates[0].WinPercentage)
		}
	}

	if _, ok := store.Get(ctx, "charts:v1:wankhede"); !ok {
		t.Fatalf("expected charts to be memoized under versioned key")
	}
}

func TestInsightService_GetVenueInsights(t *testing.T) {
	t.Parallel()

	service := newSeededInsightService(cache.NewStore(time.Minute))

	got, err := service.GetVenueInsights(context.Background(), memory.VenueIDEdenGardens)
	if err != nil {
		t.Fatalf("get venue insights: %v", err)
	}
	if got.VenueID != memory.VenueIDEdenGardens {
		t.Fatalf("unexpected venue id: %s", got.VenueID)
	}
	if got.Summary.Summary.PitchBehavior != venuesummary.PitchBalanced {
		t.Fatalf("unexpected pitch: %s", got.Summary.Summary.PitchBehavior)
	}
	if len(got.Matches.Matches) != 3 || got.Matches.Matches[0].ID != "m5" {
		t.Fatalf("unexpected match history: %+v", got.Matches.Matches)
	}
	if len(got.Charts.Charts.TopBowlers) != 3 || got.Charts.Charts.TopBowlers[0].Player != "Andre Russell" {
		t.Fatalf("unexpected top bowlers: %+v", got.Charts.Charts.TopBowlers)
	}
}

func TestInsightService_GetVenueInsights_PropagatesErrorsUsingMockery(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("summary table unavailable")
	summaryRepo := venuesummarymock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	teamRepo := teamperformancemock.NewRepository(t)
	playerRepo := playerperformancemock.NewRepository(t)

	summaryRepo.On("GetByVenue", mock.Anything, "mcg").Return(venuesummary.Summary{}, false, repoErr).Once()
	matchRepo.On("ListByVenue", mock.Anything, "mcg").Return(nil, false, nil).Maybe()
	teamRepo.On("ListByVenue", mock.Anything, "mcg").Return(nil, false, nil).Maybe()
	playerRepo.On("ListByVenue", mock.Anything, "mcg").Return(nil, false, nil).Maybe()

	service := NewInsightService(summaryRepo, matchRepo, teamRepo, playerRepo, nil, InsightServiceConfig{}, logging.NewNop(), nil)

	_, err := service.GetVenueInsights(context.Background(), "mcg")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestInsightService_Warm(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(time.Minute)
	service := newSeededInsightService(store)

	ids := []string{memory.VenueIDWankhede, memory.VenueIDEdenGardens, memory.VenueIDMCG, memory.VenueIDLords}
	warmed, err := service.Warm(context.Background(), ids)
	if err != nil {
		t.Fatalf("warm: %v", err)
	}
	if warmed != len(ids) {
		t.Fatalf("unexpected warmed count: got=%d want=%d", warmed, len(ids))
	}
	if store.Len() != len(ids) {
		t.Fatalf("unexpected cache size: got=%d want=%d", store.Len(), len(ids))
	}
	for _, id := range ids {
		if _, ok := store.Get(context.Background(), cache.Key("charts", memory.SeedDatasetVersion, id)); !ok {
			t.Fatalf("expected warmed charts for %s", id)
		}
	}
}

func TestInsightService_Warm_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := newSeededInsightService(cache.NewStore(time.Minute))
	_, err := service.Warm(ctx, []string{memory.VenueIDWankhede})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
