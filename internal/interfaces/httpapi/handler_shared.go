package httpapi

import (
	"time"

	"github.com/riskibarqy/venue-insight/internal/domain/analytics"
	"github.com/riskibarqy/venue-insight/internal/domain/match"
	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/teamperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/venue"
	"github.com/riskibarqy/venue-insight/internal/session/intake"
	"github.com/riskibarqy/venue-insight/internal/session/selection"
	"github.com/riskibarqy/venue-insight/internal/usecase"
)

type selectVenueRequest struct {
	VenueID string `json:"venue_id" validate:"required"`
}

type submitFileRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	SizeBytes int64  `json:"size_bytes"`
}

type venueDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Country  string `json:"country"`
	Capacity int    `json:"capacity"`
}

type countryGroupDTO struct {
	Country string     `json:"country"`
	Venues  []venueDTO `json:"venues"`
}

type summaryDTO struct {
	VenueID                   string  `json:"venue_id"`
	Found                     bool    `json:"found"`
	Fallback                  string  `json:"fallback"`
	AvgFirstInningsScore      float64 `json:"avg_first_innings_score"`
	AvgSecondInningsScore     float64 `json:"avg_second_innings_score"`
	BattingFirstWinPercentage float64 `json:"batting_first_win_percentage"`
	ChasingWinPercentage      float64 `json:"chasing_win_percentage"`
	AvgRunRate                float64 `json:"avg_run_rate"`
	AvgWickets                float64 `json:"avg_wickets"`
	PitchBehavior             string  `json:"pitch_behavior"`
	PitchDescription          string  `json:"pitch_description"`
	HighestTeamScore          int     `json:"highest_team_score"`
	LowestTeamScore           int     `json:"lowest_team_score"`
	InningsDifferential       float64 `json:"innings_differential"`
}

type matchDTO struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	Teams           [2]string `json:"teams"`
	Scores          [2]int    `json:"scores"`
	Winner          string    `json:"winner"`
	PlayerOfMatch   string    `json:"player_of_match"`
	MarginRuns      int       `json:"margin_runs"`
	BattingFirstWon bool      `json:"batting_first_won"`
}

type matchesDTO struct {
	VenueID  string     `json:"venue_id"`
	Found    bool       `json:"found"`
	Fallback string     `json:"fallback"`
	Matches  []matchDTO `json:"matches"`
}

type teamPerformanceDTO struct {
	Team     string  `json:"team"`
	Matches  int     `json:"matches"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	AvgScore float64 `json:"avg_score"`
}

type teamPerformanceListDTO struct {
	VenueID  string               `json:"venue_id"`
	Found    bool                 `json:"found"`
	Fallback string               `json:"fallback"`
	Teams    []teamPerformanceDTO `json:"teams"`
}

type playerPerformanceDTO struct {
	Player        string   `json:"player"`
	Team          string   `json:"team"`
	Matches       int      `json:"matches"`
	Runs          int      `json:"runs"`
	Wickets       int      `json:"wickets"`
	AvgStrikeRate float64  `json:"avg_strike_rate"`
	AvgEconomy    *float64 `json:"avg_economy,omitempty"`
}

type playerPerformanceListDTO struct {
	VenueID  string                 `json:"venue_id"`
	Found    bool                   `json:"found"`
	Fallback string                 `json:"fallback"`
	Players  []playerPerformanceDTO `json:"players"`
}

type teamWinRateDTO struct {
	teamPerformanceDTO
	WinPercentage    int  `json:"win_percentage"`
	InsufficientData bool `json:"insufficient_data"`
}

type matchShareDTO struct {
	Team         string  `json:"team"`
	Matches      int     `json:"matches"`
	SharePercent float64 `json:"share_percent"`
}

type chartsDTO struct {
	VenueID      string                 `json:"venue_id"`
	Found        bool                   `json:"found"`
	TeamWinRates []teamWinRateDTO       `json:"team_win_rates"`
	MatchShare   []matchShareDTO        `json:"match_share"`
	TopBatsmen   []playerPerformanceDTO `json:"top_batsmen"`
	TopBowlers   []playerPerformanceDTO `json:"top_bowlers"`
}

type insightsDTO struct {
	VenueID string     `json:"venue_id"`
	Summary summaryDTO `json:"summary"`
	Matches matchesDTO `json:"matches"`
	Charts  chartsDTO  `json:"charts"`
}

type selectionStateDTO struct {
	Phase    string       `json:"phase"`
	VenueID  string       `json:"venue_id,omitempty"`
	Reason   string       `json:"reason,omitempty"`
	Version  uint64       `json:"version"`
	Insights *insightsDTO `json:"insights,omitempty"`
}

type intakeFileDTO struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	SizeBytes int64  `json:"size_bytes"`
}

type uploadReceiptDTO struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	SizeBytes   int64     `json:"size_bytes"`
	CompletedAt time.Time `json:"completed_at"`
}

type noticeDTO struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type intakeStateDTO struct {
	Phase    string            `json:"phase"`
	File     *intakeFileDTO    `json:"file,omitempty"`
	Receipt  *uploadReceiptDTO `json:"receipt,omitempty"`
	Notice   *noticeDTO        `json:"notice,omitempty"`
	Version  uint64            `json:"version"`
	MaxBytes int64             `json:"max_bytes"`
}

func toVenueDTOs(items []venue.Venue) []venueDTO {
	out := make([]venueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toVenueDTO(item))
	}
	return out
}

func toVenueDTO(item venue.Venue) venueDTO {
	return venueDTO{
		ID:       item.ID,
		Name:     item.Name,
		Location: item.Location,
		Country:  item.Country,
		Capacity: item.Capacity,
	}
}

func toCountryGroupDTOs(groups []venue.CountryGroup) []countryGroupDTO {
	out := make([]countryGroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, countryGroupDTO{Country: g.Country, Venues: toVenueDTOs(g.Venues)})
	}
	return out
}

func toSummaryDTO(res usecase.SummaryResult) summaryDTO {
	s := res.Summary
	return summaryDTO{
		VenueID:                   res.VenueID,
		Found:                     res.Found,
		Fallback:                  string(res.Fallback),
		AvgFirstInningsScore:      s.AvgFirstInningsScore,
		AvgSecondInningsScore:     s.AvgSecondInningsScore,
		BattingFirstWinPercentage: s.BattingFirstWinPercentage,
		ChasingWinPercentage:      s.ChasingWinPercentage,
		AvgRunRate:                s.AvgRunRate,
		AvgWickets:                s.AvgWickets,
		PitchBehavior:             string(s.PitchBehavior),
		PitchDescription:          s.PitchBehavior.Description(),
		HighestTeamScore:          s.HighestTeamScore,
		LowestTeamScore:           s.LowestTeamScore,
		InningsDifferential:       res.InningsDifferential,
	}
}

func toMatchesDTO(res usecase.MatchesResult) matchesDTO {
	outcomes := make(map[string]analytics.MatchOutcome, len(res.Outcomes))
	for _, o := range res.Outcomes {
		outcomes[o.MatchID] = o
	}

	items := make([]matchDTO, 0, len(res.Matches))
	for _, m := range res.Matches {
		items = append(items, toMatchDTO(m, outcomes[m.ID]))
	}
	return matchesDTO{
		VenueID:  res.VenueID,
		Found:    res.Found,
		Fallback: string(res.Fallback),
		Matches:  items,
	}
}

func toMatchDTO(m match.Match, outcome analytics.MatchOutcome) matchDTO {
	return matchDTO{
		ID:              m.ID,
		Date:            m.Date.Format(match.DateLayout),
		Teams:           m.Teams,
		Scores:          m.Scores,
		Winner:          m.Winner,
		PlayerOfMatch:   m.PlayerOfMatch,
		MarginRuns:      outcome.MarginRuns,
		BattingFirstWon: outcome.BattingFirstWon,
	}
}

func toTeamPerformanceDTOs(items []teamperformance.Record) []teamPerformanceDTO {
	out := make([]teamPerformanceDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toTeamPerformanceDTO(item))
	}
	return out
}

func toTeamPerformanceDTO(item teamperformance.Record) teamPerformanceDTO {
	return teamPerformanceDTO{
		Team:     item.Team,
		Matches:  item.Matches,
		Wins:     item.Wins,
		Losses:   item.Losses,
		AvgScore: item.AvgScore,
	}
}

func toPlayerPerformanceDTOs(items []playerperformance.Record) []playerPerformanceDTO {
	out := make([]playerPerformanceDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerPerformanceDTO{
			Player:        item.Player,
			Team:          item.Team,
			Matches:       item.Matches,
			Runs:          item.Runs,
			Wickets:       item.Wickets,
			AvgStrikeRate: item.AvgStrikeRate,
			AvgEconomy:    item.AvgEconomy,
		})
	}
	return out
}

func toChartsDTO(res usecase.ChartsResult) chartsDTO {
	rates := make([]teamWinRateDTO, 0, len(res.Charts.TeamWinRates))
	for _, r := range res.Charts.TeamWinRates {
		rates = append(rates, teamWinRateDTO{
			teamPerformanceDTO: toTeamPerformanceDTO(r.Record),
			WinPercentage:      r.WinPercentage,
			InsufficientData:   r.InsufficientData,
		})
	}

	share := make([]matchShareDTO, 0, len(res.Charts.MatchShare))
	for _, s := range res.Charts.MatchShare {
		share = append(share, matchShareDTO{Team: s.Team, Matches: s.Matches, SharePercent: s.SharePercent})
	}

	return chartsDTO{
		VenueID:      res.VenueID,
		Found:        res.Found,
		TeamWinRates: rates,
		MatchShare:   share,
		TopBatsmen:   toPlayerPerformanceDTOs(res.Charts.TopBatsmen),
		TopBowlers:   toPlayerPerformanceDTOs(res.Charts.TopBowlers),
	}
}

func toInsightsDTO(in usecase.VenueInsights) insightsDTO {
	return insightsDTO{
		VenueID: in.VenueID,
		Summary: toSummaryDTO(in.Summary),
		Matches: toMatchesDTO(in.Matches),
		Charts:  toChartsDTO(in.Charts),
	}
}

func toSelectionStateDTO(s selection.State) selectionStateDTO {
	out := selectionStateDTO{
		Phase:   string(s.Phase),
		VenueID: s.VenueID,
		Reason:  s.Reason,
		Version: s.Version,
	}
	if s.Insights != nil {
		insights := toInsightsDTO(*s.Insights)
		out.Insights = &insights
	}
	return out
}

func toIntakeStateDTO(s intake.State, maxBytes int64) intakeStateDTO {
	out := intakeStateDTO{
		Phase:    string(s.Phase),
		Version:  s.Version,
		MaxBytes: maxBytes,
	}
	if s.File != nil {
		out.File = &intakeFileDTO{Name: s.File.Name, Type: s.File.DeclaredType, SizeBytes: s.File.SizeBytes}
	}
	if s.Receipt != nil {
		out.Receipt = &uploadReceiptDTO{
			ID:          s.Receipt.ID,
			FileName:    s.Receipt.FileName,
			SizeBytes:   s.Receipt.SizeBytes,
			CompletedAt: s.Receipt.CompletedAt,
		}
	}
	if s.Notice != nil {
		out.Notice = &noticeDTO{Kind: string(s.Notice.Kind), Title: s.Notice.Title, Description: s.Notice.Description}
	}
	return out
}
