// Package report renders venue analytics as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/riskibarqy/venue-insight/internal/domain/analytics"
	"github.com/riskibarqy/venue-insight/internal/domain/match"
	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/venue"
	"github.com/riskibarqy/venue-insight/internal/session/intake"
	"github.com/riskibarqy/venue-insight/internal/session/selection"
	"github.com/riskibarqy/venue-insight/internal/usecase"
)

const missing = "—"

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	body, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(body))
	return err
}

func PrintVenues(w io.Writer, items []venue.Venue) {
	table := newTable(w)
	table.Header("ID", "NAME", "LOCATION", "COUNTRY", "CAPACITY")
	for _, v := range items {
		table.Append(v.ID, v.Name, v.Location, v.Country, strconv.Itoa(v.Capacity))
	}
	table.Render()
}

// PrintCountryGroups prints one table section per country.
func PrintCountryGroups(w io.Writer, groups []venue.CountryGroup) {
	for _, g := range groups {
		fmt.Fprintf(w, "\n%s (%d)\n", g.Country, len(g.Venues))
		PrintVenues(w, g.Venues)
	}
}

func PrintSummary(w io.Writer, res usecase.SummaryResult) {
	s := res.Summary
	source := "recorded"
	if !res.Found {
		source = "default"
	}
	fmt.Fprintf(w, "\nVenue: %s  |  Source: %s  |  Pitch: %s\n%s\n\n",
		res.VenueID, source, s.PitchBehavior, s.PitchBehavior.Description())

	table := newTable(w)
	table.Header("METRIC", "VALUE")
	table.Append("Avg 1st innings", fmt.Sprintf("%.1f", s.AvgFirstInningsScore))
	table.Append("Avg 2nd innings", fmt.Sprintf("%.1f", s.AvgSecondInningsScore))
	table.Append("Innings differential", fmt.Sprintf("%.1f", res.InningsDifferential))
	table.Append("Batting first win %", fmt.Sprintf("%.1f%%", s.BattingFirstWinPercentage))
	table.Append("Chasing win %", fmt.Sprintf("%.1f%%", s.ChasingWinPercentage))
	table.Append("Avg run rate", fmt.Sprintf("%.2f", s.AvgRunRate))
	table.Append("Avg wickets", fmt.Sprintf("%.1f", s.AvgWickets))
	table.Append("Highest team score", strconv.Itoa(s.HighestTeamScore))
	table.Append("Lowest team score", strconv.Itoa(s.LowestTeamScore))
	table.Render()
}

func PrintMatches(w io.Writer, res usecase.MatchesResult) {
	if len(res.Matches) == 0 {
		fmt.Fprintf(w, "No recent matches recorded for %s.\n", res.VenueID)
		return
	}

	outcomes := make(map[string]analytics.MatchOutcome, len(res.Outcomes))
	for _, o := range res.Outcomes {
		outcomes[o.MatchID] = o
	}

	table := newTable(w)
	table.Header("ID", "DATE", "TEAMS", "SCORE", "WINNER", "MARGIN", "POTM")
	for _, m := range res.Matches {
		o := outcomes[m.ID]
		table.Append(
			m.ID,
			m.Date.Format(match.DateLayout),
			m.Teams[0]+" vs "+m.Teams[1],
			fmt.Sprintf("%d-%d", m.Scores[0], m.Scores[1]),
			m.Winner,
			fmt.Sprintf("%d runs", o.MarginRuns),
			m.PlayerOfMatch,
		)
	}
	table.Render()
}

func PrintTeams(w io.Writer, res usecase.TeamPerformanceResult) {
	if len(res.Records) == 0 {
		fmt.Fprintf(w, "No team performance recorded for %s.\n", res.VenueID)
		return
	}

	table := newTable(w)
	table.Header("TEAM", "M", "W", "L", "AVG")
	for _, r := range res.Records {
		table.Append(r.Team, strconv.Itoa(r.Matches), strconv.Itoa(r.Wins), strconv.Itoa(r.Losses), fmt.Sprintf("%.1f", r.AvgScore))
	}
	table.Render()
}

func PrintPlayers(w io.Writer, res usecase.PlayerPerformanceResult) {
	if len(res.Records) == 0 {
		fmt.Fprintf(w, "No player performance recorded for %s.\n", res.VenueID)
		return
	}
	printPlayerRows(w, res.Records)
}

func printPlayerRows(w io.Writer, records []playerperformance.Record) {
	table := newTable(w)
	table.Header("PLAYER", "TEAM", "M", "RUNS", "WKTS", "SR", "ECON")
	for _, r := range records {
		econ := missing
		if r.AvgEconomy != nil {
			econ = fmt.Sprintf("%.2f", *r.AvgEconomy)
		}
		table.Append(
			r.Player,
			r.Team,
			strconv.Itoa(r.Matches),
			strconv.Itoa(r.Runs),
			strconv.Itoa(r.Wickets),
			fmt.Sprintf("%.1f", r.AvgStrikeRate),
			econ,
		)
	}
	table.Render()
}

// PrintCharts prints the win-rate, match-share and top-performer series.
func PrintCharts(w io.Writer, res usecase.ChartsResult) {
	if !res.Found {
		fmt.Fprintf(w, "No performance data recorded for %s.\n", res.VenueID)
		return
	}

	fmt.Fprintln(w, "\nWin rate")
	rates := newTable(w)
	rates.Header("TEAM", "M", "W", "WIN%")
	for _, r := range res.Charts.TeamWinRates {
		pct := missing
		if !r.InsufficientData {
			pct = fmt.Sprintf("%d%%", r.WinPercentage)
		}
		rates.Append(r.Team, strconv.Itoa(r.Matches), strconv.Itoa(r.Wins), pct)
	}
	rates.Render()

	fmt.Fprintln(w, "\nMatch share")
	share := newTable(w)
	share.Header("TEAM", "M", "SHARE")
	for _, s := range res.Charts.MatchShare {
		share.Append(s.Team, strconv.Itoa(s.Matches), fmt.Sprintf("%.1f%%", s.SharePercent))
	}
	share.Render()

	fmt.Fprintln(w, "\nTop batsmen")
	printPlayerRows(w, res.Charts.TopBatsmen)

	fmt.Fprintln(w, "\nTop bowlers")
	if len(res.Charts.TopBowlers) == 0 {
		fmt.Fprintln(w, "No wicket takers recorded.")
		return
	}
	printPlayerRows(w, res.Charts.TopBowlers)
}

func PrintSelection(w io.Writer, s selection.State) {
	fmt.Fprintf(w, "Selection: %s  |  Venue: %s  |  Version: %d\n", s.Phase, orMissing(s.VenueID), s.Version)
	if s.Reason != "" {
		fmt.Fprintf(w, "Reason: %s\n", s.Reason)
	}
	if s.Insights == nil {
		return
	}
	PrintSummary(w, s.Insights.Summary)
	PrintMatches(w, s.Insights.Matches)
	PrintCharts(w, s.Insights.Charts)
}

func PrintIntake(w io.Writer, s intake.State) {
	file := missing
	if s.File != nil {
		file = fmt.Sprintf("%s (%d bytes)", s.File.Name, s.File.SizeBytes)
	}
	fmt.Fprintf(w, "Intake: %s  |  File: %s\n", s.Phase, file)
	if s.Receipt != nil {
		fmt.Fprintf(w, "Receipt: %s at %s\n", s.Receipt.ID, s.Receipt.CompletedAt.Format("15:04:05.000"))
	}
	if s.Notice != nil {
		fmt.Fprintf(w, "[%s] %s: %s\n", s.Notice.Kind, s.Notice.Title, s.Notice.Description)
	}
}

func orMissing(v string) string {
	if v == "" {
		return missing
	}
	return v
}
