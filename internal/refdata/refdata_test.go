package refdata

import "testing"

// The catalogs are hand-maintained; these tests catch dangling references
// introduced by edits.

func TestCitiesReferenceKnownRegions(t *testing.T) {
	for _, c := range Cities() {
		if _, ok := RegionByID(c.RegionID); !ok {
			t.Errorf("city %s references unknown region %q", c.ID, c.RegionID)
		}
	}
}

func TestLocationsReferenceKnownCities(t *testing.T) {
	for _, l := range locations {
		if _, ok := CityByID(l.CityID); !ok {
			t.Errorf("location %s references unknown city %q", l.ID, l.CityID)
		}
	}
}

func TestEveryCityHasALocationPool(t *testing.T) {
	for _, c := range Cities() {
		if len(LocationsByCity(c.ID)) == 0 {
			t.Errorf("city %s has no locations to seed or refine with", c.ID)
		}
	}
}

func TestFaresReferenceKnownCities(t *testing.T) {
	for pair := range fares {
		for _, id := range pair {
			if _, ok := CityByID(id); !ok {
				t.Errorf("fare pair %v references unknown city %q", pair, id)
			}
		}
	}
}

func TestFareLookupIsSymmetric(t *testing.T) {
	forward, okF := Fare("tokyo", "osaka")
	reverse, okR := Fare("osaka", "tokyo")
	if !okF || !okR || forward != reverse {
		t.Errorf("Fare(tokyo,osaka) = %d/%v, Fare(osaka,tokyo) = %d/%v", forward, okF, reverse, okR)
	}

	if _, ok := Fare("tokyo", "atlantis"); ok {
		t.Error("unknown pair must report ok=false")
	}
}

func TestFarRegionPairsReferenceKnownRegions(t *testing.T) {
	for pair := range farRegionPairs {
		for _, id := range pair {
			if _, ok := RegionByID(id); !ok {
				t.Errorf("far pair %v references unknown region %q", pair, id)
			}
		}
	}
}

func TestRailPassTiersAreOrderedCheapestFirst(t *testing.T) {
	passes := RailPasses()
	if len(passes) == 0 {
		t.Fatal("no rail pass tiers")
	}
	for i := 1; i < len(passes); i++ {
		if passes[i].Price <= passes[i-1].Price || passes[i].DurationDays <= passes[i-1].DurationDays {
			t.Errorf("tier %s out of order", passes[i].ID)
		}
	}
}

func TestCalendarWindowContains(t *testing.T) {
	tests := []struct {
		name   string
		window CalendarWindow
		month  int
		day    int
		want   bool
	}{
		{"inside plain window", CalendarWindow{StartMonth: 4, StartDay: 29, EndMonth: 5, EndDay: 5}, 5, 1, true},
		{"start boundary", CalendarWindow{StartMonth: 4, StartDay: 29, EndMonth: 5, EndDay: 5}, 4, 29, true},
		{"end boundary", CalendarWindow{StartMonth: 4, StartDay: 29, EndMonth: 5, EndDay: 5}, 5, 5, true},
		{"just outside", CalendarWindow{StartMonth: 4, StartDay: 29, EndMonth: 5, EndDay: 5}, 5, 6, false},
		{"wrap before boundary", CalendarWindow{StartMonth: 12, StartDay: 30, EndMonth: 1, EndDay: 3}, 12, 31, true},
		{"wrap after boundary", CalendarWindow{StartMonth: 12, StartDay: 30, EndMonth: 1, EndDay: 3}, 1, 2, true},
		{"wrap outside", CalendarWindow{StartMonth: 12, StartDay: 30, EndMonth: 1, EndDay: 3}, 1, 4, false},
		{"wrap far outside", CalendarWindow{StartMonth: 12, StartDay: 30, EndMonth: 1, EndDay: 3}, 7, 15, false},
		{"same month wrap", CalendarWindow{StartMonth: 6, StartDay: 20, EndMonth: 6, EndDay: 10}, 6, 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Contains(tt.month, tt.day); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestCalendarWindowWraps(t *testing.T) {
	if !(CalendarWindow{StartMonth: 12, StartDay: 30, EndMonth: 1, EndDay: 3}).Wraps() {
		t.Error("December-January window must wrap")
	}
	if (CalendarWindow{StartMonth: 4, StartDay: 29, EndMonth: 5, EndDay: 5}).Wraps() {
		t.Error("April-May window must not wrap")
	}
	if !(CalendarWindow{StartMonth: 6, StartDay: 20, EndMonth: 6, EndDay: 10}).Wraps() {
		t.Error("same-month inverted window must wrap")
	}
}
