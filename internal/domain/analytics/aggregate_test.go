package analytics

import (
	"testing"

	"github.com/riskibarqy/venue-insight/internal/domain/match"
	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/teamperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/venuesummary"
)

func TestWinPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record teamperformance.Record
		want   int
		wantOK bool
	}{
		{name: "seventy percent", record: teamperformance.Record{Matches: 10, Wins: 7}, want: 70, wantOK: true},
		{name: "rounds half up", record: teamperformance.Record{Matches: 8, Wins: 1}, want: 13, wantOK: true},
		{name: "rounds down", record: teamperformance.Record{Matches: 7, Wins: 3}, want: 43, wantOK: true},
		{name: "two of five", record: teamperformance.Record{Matches: 5, Wins: 2}, want: 40, wantOK: true},
		{name: "no matches", record: teamperformance.Record{Matches: 0}, want: 0, wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := WinPercentage(tc.record)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("unexpected win percentage: got=(%d,%v) want=(%d,%v)", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestTeamWinRates_MarksInsufficientData(t *testing.T) {
	t.Parallel()

	rows := TeamWinRates([]teamperformance.Record{
		{Team: "Kolkata Knight Riders", Matches: 12, Wins: 8, Losses: 4, AvgScore: 176.3},
		{Team: "New Side", Matches: 0},
	})
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(rows))
	}
	if rows[0].WinPercentage != 67 || rows[0].InsufficientData {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[0].AvgScore != 176.3 {
		t.Fatalf("team record fields not carried: %+v", rows[0])
	}
	if !rows[1].InsufficientData || rows[1].WinPercentage != 0 {
		t.Fatalf("expected insufficient data marker: %+v", rows[1])
	}
}

func samplePlayers() []playerperformance.Record {
	return []playerperformance.Record{
		{Player: "A", Runs: 100, Wickets: 0},
		{Player: "B", Runs: 300, Wickets: 4, AvgEconomy: playerperformance.Economy(7.1)},
		{Player: "C", Runs: 100, Wickets: 9, AvgEconomy: playerperformance.Economy(6.5)},
		{Player: "D", Runs: 50, Wickets: 4, AvgEconomy: playerperformance.Economy(8.0)},
		{Player: "E", Runs: 100, Wickets: 0},
		{Player: "F", Runs: 20, Wickets: 2, AvgEconomy: playerperformance.Economy(9.2)},
		{Player: "G", Runs: 250, Wickets: 1, AvgEconomy: playerperformance.Economy(9.9)},
		{Player: "H", Runs: 10, Wickets: 3, AvgEconomy: playerperformance.Economy(7.7)},
	}
}

func TestTopBatsmen(t *testing.T) {
	t.Parallel()

	input := samplePlayers()
	got := TopBatsmen(input, DefaultTopN)

	wantOrder := []string{"B", "G", "A", "C", "E"}
	if len(got) != len(wantOrder) {
		t.Fatalf("unexpected length: got=%d want=%d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].Player != want {
			t.Fatalf("unexpected batsman at %d: got=%s want=%s", i, got[i].Player, want)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Runs > got[i-1].Runs {
			t.Fatalf("runs increased at %d", i)
		}
	}
	if input[0].Player != "A" || input[1].Player != "B" {
		t.Fatalf("input slice was reordered")
	}
}

func TestTopBowlers(t *testing.T) {
	t.Parallel()

	got := TopBowlers(samplePlayers(), DefaultTopN)

	wantOrder := []string{"C", "B", "D", "H", "F"}
	if len(got) != len(wantOrder) {
		t.Fatalf("unexpected length: got=%d want=%d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].Player != want {
			t.Fatalf("unexpected bowler at %d: got=%s want=%s", i, got[i].Player, want)
		}
		if got[i].Wickets <= 0 {
			t.Fatalf("bowler without wickets included: %+v", got[i])
		}
	}
}

func TestTopBowlers_NoWicketTakers(t *testing.T) {
	t.Parallel()

	got := TopBowlers([]playerperformance.Record{{Player: "A", Runs: 40}}, DefaultTopN)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestMatchShare(t *testing.T) {
	t.Parallel()

	got := MatchShare([]teamperformance.Record{
		{Team: "A", Matches: 3},
		{Team: "B", Matches: 1},
	})
	if got[0].SharePercent != 75 || got[1].SharePercent != 25 {
		t.Fatalf("unexpected shares: %+v", got)
	}

	empty := MatchShare([]teamperformance.Record{{Team: "A"}})
	if empty[0].SharePercent != 0 {
		t.Fatalf("expected zero share without matches: %+v", empty)
	}
}

func TestInningsDifferential(t *testing.T) {
	t.Parallel()

	s := venuesummary.Summary{AvgFirstInningsScore: 175.3, AvgSecondInningsScore: 161.8}
	if got := InningsDifferential(s); got != 13.5 {
		t.Fatalf("unexpected differential: got=%v want=13.5", got)
	}
}

func TestMatchOutcomes(t *testing.T) {
	t.Parallel()

	got := MatchOutcomes([]match.Match{
		{ID: "m2", Teams: [2]string{"MI", "RCB"}, Scores: [2]int{186, 192}, Winner: "RCB"},
		{ID: "m1", Teams: [2]string{"MI", "CSK"}, Scores: [2]int{218, 190}, Winner: "MI"},
	})

	if got[0].BattingFirstWon || got[0].MarginRuns != 6 || got[0].WinningScore != 192 {
		t.Fatalf("unexpected chasing outcome: %+v", got[0])
	}
	if !got[1].BattingFirstWon || got[1].MarginRuns != 28 || got[1].LosingScore != 190 {
		t.Fatalf("unexpected defending outcome: %+v", got[1])
	}
}

func TestSortMatchesByDate(t *testing.T) {
	t.Parallel()

	input := []match.Match{
		{ID: "old", Date: match.MustDate("2023-04-22")},
		{ID: "new", Date: match.MustDate("2023-05-12")},
		{ID: "mid", Date: match.MustDate("2023-05-06")},
	}
	got := SortMatchesByDate(input)
	want := []string{"new", "mid", "old"}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("unexpected match at %d: got=%s want=%s", i, got[i].ID, want[i])
		}
	}
	if input[0].ID != "old" {
		t.Fatalf("input slice was reordered")
	}
}

func TestCharts_Clone(t *testing.T) {
	t.Parallel()

	charts := BuildCharts(
		[]teamperformance.Record{{Team: "Mumbai Indians", Matches: 10, Wins: 7, Losses: 3}},
		[]playerperformance.Record{{Player: "Jasprit Bumrah", Runs: 18, Wickets: 15}},
	)
	clone := charts.Clone()
	clone.TeamWinRates[0].WinPercentage = 0
	clone.TopBatsmen[0].Player = "mutated"
	clone.TopBowlers[0].Wickets = 0
	clone.MatchShare[0].Team = "mutated"

	if charts.TeamWinRates[0].WinPercentage != 70 {
		t.Fatalf("win rate shared with clone: got=%d", charts.TeamWinRates[0].WinPercentage)
	}
	if charts.TopBatsmen[0].Player != "Jasprit Bumrah" || charts.TopBowlers[0].Wickets != 15 {
		t.Fatalf("player rows shared with clone: %+v %+v", charts.TopBatsmen[0], charts.TopBowlers[0])
	}
	if charts.MatchShare[0].Team != "Mumbai Indians" {
		t.Fatalf("match share shared with clone: %+v", charts.MatchShare[0])
	}
}
