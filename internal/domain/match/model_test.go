package match

import "testing"

func TestMatchValidate(t *testing.T) {
	t.Parallel()

	base := Match{
		ID:            "m1",
		Date:          MustDate("2023-05-12"),
		Teams:         [2]string{"Mumbai Indians", "Chennai Super Kings"},
		Scores:        [2]int{218, 190},
		Winner:        "Mumbai Indians",
		PlayerOfMatch: "Rohit Sharma",
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(m *Match){
		"same teams":     func(m *Match) { m.Teams[1] = m.Teams[0] },
		"negative score": func(m *Match) { m.Scores[1] = -1 },
		"foreign winner": func(m *Match) { m.Winner = "Delhi Capitals" },
		"missing date":   func(m *Match) { m.Date = MustDate("0001-01-01") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			item := base
			mutate(&item)
			if err := item.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestMatchWinnerIndex(t *testing.T) {
	t.Parallel()

	m := Match{Teams: [2]string{"A", "B"}, Winner: "B"}
	if got := m.WinnerIndex(); got != 1 {
		t.Fatalf("unexpected winner index: got=%d want=1", got)
	}
}
