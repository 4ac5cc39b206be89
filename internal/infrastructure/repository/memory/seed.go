package memory

import (
	"github.com/riskibarqy/venue-insight/internal/domain/match"
	"github.com/riskibarqy/venue-insight/internal/domain/playerperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/teamperformance"
	"github.com/riskibarqy/venue-insight/internal/domain/venue"
	"github.com/riskibarqy/venue-insight/internal/domain/venuesummary"
)

// SeedDatasetVersion identifies the reference data below. Derived results
// may be memoized per version.
const SeedDatasetVersion = "ipl-2023-05"

const (
	VenueIDWankhede    = "wankhede"
	VenueIDEdenGardens = "eden-gardens"
	VenueIDMCG         = "mcg"
	VenueIDLords       = "lords"
)

func SeedVenues() []venue.Venue {
	return []venue.Venue{
		{ID: VenueIDWankhede, Name: "Wankhede Stadium", Location: "Mumbai, Maharashtra", Country: "India", Capacity: 33108},
		{ID: VenueIDEdenGardens, Name: "Eden Gardens", Location: "Kolkata, West Bengal", Country: "India", Capacity: 66000},
		{ID: "chepauk", Name: "M. A. Chidambaram Stadium", Location: "Chennai, Tamil Nadu", Country: "India", Capacity: 50000},
		{ID: "chinnaswamy", Name: "M. Chinnaswamy Stadium", Location: "Bangalore, Karnataka", Country: "India", Capacity: 40000},
		{ID: VenueIDMCG, Name: "Melbourne Cricket Ground", Location: "Melbourne, Victoria", Country: "Australia", Capacity: 100024},
		{ID: "scg", Name: "Sydney Cricket Ground", Location: "Sydney, New South Wales", Country: "Australia", Capacity: 48000},
		{ID: "gabba", Name: "The Gabba", Location: "Brisbane, Queensland", Country: "Australia", Capacity: 42000},
		{ID: VenueIDLords, Name: "Lord's Cricket Ground", Location: "London", Country: "England", Capacity: 30000},
		{ID: "oval", Name: "The Oval", Location: "London", Country: "England", Capacity: 25500},
		{ID: "wanderers", Name: "Wanderers Stadium", Location: "Johannesburg", Country: "South Africa", Capacity: 34000},
	}
}

func SeedVenueSummaries() map[string]venuesummary.Summary {
	return map[string]venuesummary.Summary{
		VenueIDWankhede: {
			AvgFirstInningsScore:      175.3,
			AvgSecondInningsScore:     161.8,
			BattingFirstWinPercentage: 56.7,
			ChasingWinPercentage:      43.3,
			AvgRunRate:                8.76,
			AvgWickets:                7.2,
			PitchBehavior:             venuesummary.PitchBatting,
			HighestTeamScore:          235,
			LowestTeamScore:           87,
		},
		VenueIDEdenGardens: {
			AvgFirstInningsScore:      162.4,
			AvgSecondInningsScore:     151.9,
			BattingFirstWinPercentage: 62.1,
			ChasingWinPercentage:      37.9,
			AvgRunRate:                8.12,
			AvgWickets:                7.9,
			PitchBehavior:             venuesummary.PitchBalanced,
			HighestTeamScore:          218,
			LowestTeamScore:           92,
		},
		VenueIDMCG: {
			AvgFirstInningsScore:      169.8,
			AvgSecondInningsScore:     155.2,
			BattingFirstWinPercentage: 58.5,
			ChasingWinPercentage:      41.5,
			AvgRunRate:                8.49,
			AvgWickets:                7.1,
			PitchBehavior:             venuesummary.PitchBatting,
			HighestTeamScore:          226,
			LowestTeamScore:           98,
		},
		VenueIDLords: {
			AvgFirstInningsScore:      158.6,
			AvgSecondInningsScore:     145.3,
			BattingFirstWinPercentage: 59.2,
			ChasingWinPercentage:      40.8,
			AvgRunRate:                7.93,
			AvgWickets:                8.3,
			PitchBehavior:             venuesummary.PitchBowling,
			HighestTeamScore:          210,
			LowestTeamScore:           102,
		},
	}
}

func SeedMatches() map[string][]match.Match {
	return map[string][]match.Match{
		VenueIDWankhede: {
			{
				ID:            "m1",
				Date:          match.MustDate("2023-05-12"),
				Teams:         [2]string{"Mumbai Indians", "Chennai Super Kings"},
				Scores:        [2]int{218, 190},
				Winner:        "Mumbai Indians",
				PlayerOfMatch: "Rohit Sharma",
			},
			{
				ID:            "m2",
				Date:          match.MustDate("2023-05-06"),
				Teams:         [2]string{"Mumbai Indians", "Royal Challengers Bangalore"},
				Scores:        [2]int{186, 192},
				Winner:        "Royal Challengers Bangalore",
				PlayerOfMatch: "Virat Kohli",
			},
			{
				ID:            "m3",
				Date:          match.MustDate("2023-04-29"),
				Teams:         [2]string{"Mumbai Indians", "Kolkata Knight Riders"},
				Scores:        [2]int{171, 164},
				Winner:        "Mumbai Indians",
				PlayerOfMatch: "Suryakumar Yadav",
			},
			{
				ID:            "m4",
				Date:          match.MustDate("2023-04-22"),
				Teams:         [2]string{"Mumbai Indians", "Rajasthan Royals"},
				Scores:        [2]int{212, 186},
				Winner:        "Mumbai Indians",
				PlayerOfMatch: "Tim David",
			},
		},
		VenueIDEdenGardens: {
			{
				ID:            "m5",
				Date:          match.MustDate("2023-05-14"),
				Teams:         [2]string{"Kolkata Knight Riders", "Sunrisers Hyderabad"},
				Scores:        [2]int{204, 182},
				Winner:        "Kolkata Knight Riders",
				PlayerOfMatch: "Rinku Singh",
			},
			{
				ID:            "m6",
				Date:          match.MustDate("2023-05-08"),
				Teams:         [2]string{"Kolkata Knight Riders", "Punjab Kings"},
				Scores:        [2]int{179, 146},
				Winner:        "Kolkata Knight Riders",
				PlayerOfMatch: "Andre Russell",
			},
			{
				ID:            "m7",
				Date:          match.MustDate("2023-05-01"),
				Teams:         [2]string{"Kolkata Knight Riders", "Gujarat Titans"},
				Scores:        [2]int{158, 161},
				Winner:        "Gujarat Titans",
				PlayerOfMatch: "Shubman Gill",
			},
		},
	}
}

func SeedTeamPerformance() map[string][]teamperformance.Record {
	return map[string][]teamperformance.Record{
		VenueIDWankhede: {
			{Team: "Mumbai Indians", Matches: 10, Wins: 7, Losses: 3, AvgScore: 187.2},
			{Team: "Chennai Super Kings", Matches: 8, Wins: 3, Losses: 5, AvgScore: 172.5},
			{Team: "Royal Challengers Bangalore", Matches: 6, Wins: 2, Losses: 4, AvgScore: 165.8},
			{Team: "Kolkata Knight Riders", Matches: 5, Wins: 1, Losses: 4, AvgScore: 158.4},
		},
		VenueIDEdenGardens: {
			{Team: "Kolkata Knight Riders", Matches: 12, Wins: 8, Losses: 4, AvgScore: 176.3},
			{Team: "Chennai Super Kings", Matches: 7, Wins: 3, Losses: 4, AvgScore: 168.7},
			{Team: "Mumbai Indians", Matches: 6, Wins: 2, Losses: 4, AvgScore: 163.2},
			{Team: "Delhi Capitals", Matches: 5, Wins: 2, Losses: 3, AvgScore: 159.8},
		},
	}
}

func SeedPlayerPerformance() map[string][]playerperformance.Record {
	return map[string][]playerperformance.Record{
		VenueIDWankhede: {
			{Player: "Rohit Sharma", Team: "Mumbai Indians", Matches: 10, Runs: 342, Wickets: 0, AvgStrikeRate: 147.2},
			{Player: "Jasprit Bumrah", Team: "Mumbai Indians", Matches: 10, Runs: 18, Wickets: 15, AvgStrikeRate: 116.4, AvgEconomy: playerperformance.Economy(6.8)},
			{Player: "MS Dhoni", Team: "Chennai Super Kings", Matches: 8, Runs: 187, Wickets: 0, AvgStrikeRate: 162.7},
			{Player: "Virat Kohli", Team: "Royal Challengers Bangalore", Matches: 6, Runs: 256, Wickets: 0, AvgStrikeRate: 143.2},
		},
		VenueIDEdenGardens: {
			{Player: "Andre Russell", Team: "Kolkata Knight Riders", Matches: 12, Runs: 278, Wickets: 18, AvgStrikeRate: 182.6, AvgEconomy: playerperformance.Economy(8.9)},
			{Player: "Sunil Narine", Team: "Kolkata Knight Riders", Matches: 12, Runs: 156, Wickets: 16, AvgStrikeRate: 172.4, AvgEconomy: playerperformance.Economy(7.2)},
			{Player: "Ravindra Jadeja", Team: "Chennai Super Kings", Matches: 7, Runs: 123, Wickets: 9, AvgStrikeRate: 142.8, AvgEconomy: playerperformance.Economy(7.8)},
		},
	}
}
