package planner

import (
	"testing"

	"tabiplan/internal/model"
	"tabiplan/internal/refdata"
)

func testRecommender() *Recommender {
	return NewRecommender(0.7, 0.3)
}

func tokyoEntry() *model.EntryPoint {
	return &model.EntryPoint{
		Type:        model.EntryAirport,
		ID:          "hnd",
		Name:        "Haneda Airport",
		Coordinates: model.Coordinates{Lat: 35.5494, Lng: 139.7798},
		RegionID:    "kanto",
	}
}

func TestScoreRegions_ScoresInRange(t *testing.T) {
	tests := []struct {
		name  string
		vibes []string
		entry *model.EntryPoint
	}{
		{"no inputs", nil, nil},
		{"vibes only", []string{"food", "culture"}, nil},
		{"entry only", nil, tokyoEntry()},
		{"both", []string{"nature", "beach", "winter_sports"}, tokyoEntry()},
		{"unmatched vibes", []string{"spelunking"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := testRecommender().ScoreRegions(tt.vibes, tt.entry)
			if len(scores) != len(refdata.Regions()) {
				t.Fatalf("expected %d scores, got %d", len(refdata.Regions()), len(scores))
			}
			for _, s := range scores {
				for field, v := range map[string]int{"match": s.MatchScore, "proximity": s.ProximityScore, "total": s.TotalScore} {
					if v < 0 || v > 100 {
						t.Errorf("region %s %s score %d out of [0,100]", s.Region, field, v)
					}
				}
			}
		})
	}
}

func TestScoreRegions_DescendingAfterRelocation(t *testing.T) {
	scores := testRecommender().ScoreRegions([]string{"food", "culture"}, tokyoEntry())

	if !scores[0].IsEntryPointRegion || scores[0].Region != "kanto" {
		t.Fatalf("expected entry-point region first, got %s", scores[0].Region)
	}
	// Everything after the relocated head stays in descending order
	for i := 2; i < len(scores); i++ {
		if scores[i].TotalScore > scores[i-1].TotalScore {
			t.Errorf("scores[%d]=%d > scores[%d]=%d", i, scores[i].TotalScore, i-1, scores[i-1].TotalScore)
		}
	}
}

func TestScoreRegions_NeutralWithoutInputs(t *testing.T) {
	scores := testRecommender().ScoreRegions(nil, nil)
	for _, s := range scores {
		if s.MatchScore != 50 || s.ProximityScore != 50 || s.TotalScore != 50 {
			t.Errorf("region %s: expected neutral 50/50/50, got %d/%d/%d", s.Region, s.MatchScore, s.ProximityScore, s.TotalScore)
		}
		if s.IsEntryPointRegion {
			t.Errorf("region %s flagged as entry-point region without an entry point", s.Region)
		}
	}
}

func TestScoreRegions_VibeMatchFormula(t *testing.T) {
	scores := testRecommender().ScoreRegions([]string{"food", "culture"}, nil)

	byRegion := map[string]model.RegionScore{}
	for _, s := range scores {
		byRegion[s.Region] = s
	}

	// Kansai matches both vibes: 2/2*90 + 10 bonus = 100
	if got := byRegion["kansai"].MatchScore; got != 100 {
		t.Errorf("kansai match = %d, want 100", got)
	}
	// Kyushu matches food only: 1/2*90 = 45, no bonus
	if got := byRegion["kyushu"].MatchScore; got != 45 {
		t.Errorf("kyushu match = %d, want 45", got)
	}
	// Okinawa matches neither
	if got := byRegion["okinawa"].MatchScore; got != 0 {
		t.Errorf("okinawa match = %d, want 0", got)
	}

	if scores[0].Region != "kansai" {
		t.Errorf("expected kansai ranked first, got %s", scores[0].Region)
	}
}

func TestScoreRegions_TopThreeRecommended(t *testing.T) {
	scores := testRecommender().ScoreRegions([]string{"beach"}, nil)
	for i, s := range scores {
		want := i < 3
		if s.IsRecommended != want {
			t.Errorf("scores[%d] (%s) IsRecommended = %v, want %v", i, s.Region, s.IsRecommended, want)
		}
	}
}

func TestAutoSelectRegions_DurationBuckets(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{0, 1},
		{3, 1},
		{5, 1},
		{7, 2},
		{9, 2},
		{12, 3},
	}

	for _, tt := range tests {
		got := testRecommender().AutoSelectRegions([]string{"food", "culture"}, nil, tt.duration)
		if len(got) != tt.want {
			t.Errorf("AutoSelectRegions(duration=%d) returned %d regions, want %d", tt.duration, len(got), tt.want)
		}
	}
}

func TestAutoSelectRegions_TopScoredFirst(t *testing.T) {
	got := testRecommender().AutoSelectRegions([]string{"food", "culture"}, nil, 3)
	if got[0] != "kansai" {
		t.Errorf("expected kansai first, got %v", got)
	}
}

func TestAutoSelectCities_ExactlyTwoRegions(t *testing.T) {
	tests := []struct {
		name  string
		vibes []string
		entry *model.EntryPoint
	}{
		{"no entry point", []string{"food", "culture"}, nil},
		{"entry point region also top scorer", []string{"city", "pop_culture"}, tokyoEntry()},
		{"entry point region ranked lower", []string{"beach"}, tokyoEntry()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cityIDs := testRecommender().AutoSelectCities(tt.vibes, tt.entry)
			if len(cityIDs) == 0 {
				t.Fatal("expected cities, got none")
			}

			regions := map[string]bool{}
			for _, id := range cityIDs {
				city, ok := refdata.CityByID(id)
				if !ok {
					t.Fatalf("unknown city id %q", id)
				}
				regions[city.RegionID] = true
			}
			if len(regions) != 2 {
				t.Errorf("expected cities from exactly 2 regions, got %d (%v)", len(regions), regions)
			}
		})
	}
}

func TestAutoSelectCities_IncludesEntryRegion(t *testing.T) {
	cityIDs := testRecommender().AutoSelectCities([]string{"beach"}, tokyoEntry())

	hasKanto := false
	for _, id := range cityIDs {
		if city, _ := refdata.CityByID(id); city.RegionID == "kanto" {
			hasKanto = true
			break
		}
	}
	if !hasKanto {
		t.Errorf("expected entry-point region cities in %v", cityIDs)
	}
}

func TestEntryRegionID(t *testing.T) {
	tests := []struct {
		name  string
		entry *model.EntryPoint
		want  string
	}{
		{"nil entry", nil, ""},
		{"explicit region", &model.EntryPoint{RegionID: "kyushu"}, "kyushu"},
		{
			"nearest centroid",
			&model.EntryPoint{Coordinates: model.Coordinates{Lat: 34.78, Lng: 135.44}}, // Itami Airport
			"kansai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EntryRegionID(tt.entry); got != tt.want {
				t.Errorf("EntryRegionID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHaversineKm(t *testing.T) {
	tokyo := model.Coordinates{Lat: 35.6762, Lng: 139.6503}
	osaka := model.Coordinates{Lat: 34.6937, Lng: 135.5023}

	got := HaversineKm(tokyo, osaka)
	if got < 380 || got > 420 {
		t.Errorf("Tokyo-Osaka distance = %.1f km, want ~400", got)
	}
	if d := HaversineKm(tokyo, tokyo); d != 0 {
		t.Errorf("zero distance = %f, want 0", d)
	}
	if HaversineKm(tokyo, osaka) != HaversineKm(osaka, tokyo) {
		t.Error("distance is not symmetric")
	}
}
