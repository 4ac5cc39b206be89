package analytics

import (
	"math"
	"slices"
	"sort"

	"github.com/riskibarqy/venue-insight/internal/domain/match"
	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/teamperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/venuesummary"
)

// DefaultTopN is the ranking size used by chart projections.
const DefaultTopN = 5

// TeamWinRate is a team record annotated with its win percentage.
type TeamWinRate struct {
	teamperformance.Record
	WinPercentage    int
	InsufficientData bool
}

// TeamMatchShare is one slice of the matches-played distribution.
type TeamMatchShare struct {
	Team         string
	Matches      int
	SharePercent float64
}

// MatchOutcome describes how a single match was decided.
type MatchOutcome struct {
	MatchID         string
	Winner          string
	WinnerIndex     int
	MarginRuns      int
	BattingFirstWon bool
	WinningScore    int
	LosingScore     int
}

// Charts bundles every chart-ready projection for one venue.
type Charts struct {
	TeamWinRates []TeamWinRate
	MatchShare   []TeamMatchShare
	TopBatsmen   []playerperformance.Record
	TopBowlers   []playerperformance.Record
}

// Clone returns a copy whose slices share no backing arrays with c.
func (c Charts) Clone() Charts {
	return Charts{
		TeamWinRates: slices.Clone(c.TeamWinRates),
		MatchShare:   slices.Clone(c.MatchShare),
		TopBatsmen:   slices.Clone(c.TopBatsmen),
		TopBowlers:   slices.Clone(c.TopBowlers),
	}
}

// WinPercentage returns round(wins/matches*100). A record without matches
// yields (0, false) instead of NaN.
func WinPercentage(r teamperformance.Record) (int, bool) {
	if r.Matches <= 0 {
		return 0, false
	}
	return roundHalfUp(float64(r.Wins) / float64(r.Matches) * 100), true
}

func TeamWinRates(records []teamperformance.Record) []TeamWinRate {
	out := make([]TeamWinRate, 0, len(records))
	for _, r := range records {
		pct, ok := WinPercentage(r)
		out = append(out, TeamWinRate{
			Record:           r,
			WinPercentage:    pct,
			InsufficientData: !ok,
		})
	}
	return out
}

// MatchShare projects the matches-played distribution across teams.
func MatchShare(records []teamperformance.Record) []TeamMatchShare {
	total := 0
	for _, r := range records {
		total += r.Matches
	}

	out := make([]TeamMatchShare, 0, len(records))
	for _, r := range records {
		share := 0.0
		if total > 0 {
			share = roundTo(float64(r.Matches)/float64(total)*100, 1)
		}
		out = append(out, TeamMatchShare{
			Team:         r.Team,
			Matches:      r.Matches,
			SharePercent: share,
		})
	}
	return out
}

// TopBatsmen ranks players by runs, descending. Ties keep repository order.
func TopBatsmen(records []playerperformance.Record, limit int) []playerperformance.Record {
	ranked := append([]playerperformance.Record(nil), records...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Runs > ranked[j].Runs
	})
	return head(ranked, limit)
}

// TopBowlers ranks players with at least one wicket by wickets, descending.
// Ties keep repository order.
func TopBowlers(records []playerperformance.Record, limit int) []playerperformance.Record {
	ranked := make([]playerperformance.Record, 0, len(records))
	for _, r := range records {
		if r.Wickets > 0 {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Wickets > ranked[j].Wickets
	})
	return head(ranked, limit)
}

func BuildCharts(teams []teamperformance.Record, players []playerperformance.Record) Charts {
	return Charts{
		TeamWinRates: TeamWinRates(teams),
		MatchShare:   MatchShare(teams),
		TopBatsmen:   TopBatsmen(players, DefaultTopN),
		TopBowlers:   TopBowlers(players, DefaultTopN),
	}
}

// InningsDifferential is the average first-innings score minus the average
// second-innings score, to one decimal.
func InningsDifferential(s venuesummary.Summary) float64 {
	return roundTo(s.AvgFirstInningsScore-s.AvgSecondInningsScore, 1)
}

func MatchOutcomes(matches []match.Match) []MatchOutcome {
	out := make([]MatchOutcome, 0, len(matches))
	for _, m := range matches {
		idx := m.WinnerIndex()
		item := MatchOutcome{
			MatchID:     m.ID,
			Winner:      m.Winner,
			WinnerIndex: idx,
			MarginRuns:  abs(m.Scores[0] - m.Scores[1]),
		}
		if idx >= 0 {
			item.BattingFirstWon = idx == 0
			item.WinningScore = m.Scores[idx]
			item.LosingScore = m.Scores[1-idx]
		}
		out = append(out, item)
	}
	return out
}

// SortMatchesByDate returns a copy ordered newest first. Matches on the same
// date keep repository order.
func SortMatchesByDate(matches []match.Match) []match.Match {
	out := append([]match.Match(nil), matches...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func head[T any](items []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// roundHalfUp matches the rounding used for percentages on the dashboard.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
