package match

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date layout used by match records.
const DateLayout = "2006-01-02"

// Match is one completed fixture played at a venue. The venue is implied by
// the repository key, not stored on the record.
type Match struct {
	ID            string
	Date          time.Time
	Teams         [2]string
	Scores        [2]int
	Winner        string
	PlayerOfMatch string
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required: match=%s", m.ID)
	}
	if m.Teams[0] == "" || m.Teams[1] == "" {
		return fmt.Errorf("match requires two team names: match=%s", m.ID)
	}
	if m.Teams[0] == m.Teams[1] {
		return fmt.Errorf("match teams must be distinct: match=%s team=%s", m.ID, m.Teams[0])
	}
	if m.Scores[0] < 0 || m.Scores[1] < 0 {
		return fmt.Errorf("match scores must be non-negative: match=%s", m.ID)
	}
	if m.WinnerIndex() < 0 {
		return fmt.Errorf("match winner must be one of the teams: match=%s winner=%s", m.ID, m.Winner)
	}

	return nil
}

// WinnerIndex returns the position of the winner in Teams, or -1.
func (m Match) WinnerIndex() int {
	switch m.Winner {
	case m.Teams[0]:
		return 0
	case m.Teams[1]:
		return 1
	default:
		return -1
	}
}

// MustDate parses a calendar date in DateLayout and panics on failure. It is
// meant for literal seed data only.
func MustDate(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(fmt.Sprintf("parse match date %q: %v", value, err))
	}
	return t
}
