package venue

import "testing"

func TestGroupByCountry(t *testing.T) {
	t.Parallel()

	items := []Venue{
		{ID: "wankhede", Country: "India"},
		{ID: "mcg", Country: "Australia"},
		{ID: "eden-gardens", Country: "India"},
		{ID: "lords", Country: "England"},
		{ID: "scg", Country: "Australia"},
	}

	groups := GroupByCountry(items)
	wantCountries := []string{"Australia", "England", "India"}
	if len(groups) != len(wantCountries) {
		t.Fatalf("unexpected group count: got=%d want=%d", len(groups), len(wantCountries))
	}
	for i, want := range wantCountries {
		if groups[i].Country != want {
			t.Fatalf("unexpected country at %d: got=%s want=%s", i, groups[i].Country, want)
		}
	}

	india := groups[2].Venues
	if len(india) != 2 || india[0].ID != "wankhede" || india[1].ID != "eden-gardens" {
		t.Fatalf("insertion order not preserved inside country: %+v", india)
	}

	flat := Flatten(groups)
	wantIDs := []string{"mcg", "scg", "lords", "wankhede", "eden-gardens"}
	for i, want := range wantIDs {
		if flat[i].ID != want {
			t.Fatalf("unexpected flattened venue at %d: got=%s want=%s", i, flat[i].ID, want)
		}
	}
}

func TestVenueValidate(t *testing.T) {
	t.Parallel()

	valid := Venue{ID: "oval", Name: "The Oval", Country: "England", Capacity: 25500}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := valid
	invalid.Capacity = 0
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for non-positive capacity")
	}
}
