package planner

import (
	"testing"

	"tabiplan/internal/model"
)

func TestCalculateRailPassValue_ShortTripSkips(t *testing.T) {
	got := CalculateRailPassValue(3, []string{"tokyo", "osaka"})

	if got.Recommendation != model.PassRecommendationSkip {
		t.Errorf("recommendation = %q, want skip", got.Recommendation)
	}
	if got.IndividualTotal != 13870 {
		t.Errorf("individual total = %d, want 13870", got.IndividualTotal)
	}
	if got.Pass == nil || got.Pass.ID != "jr-7" {
		t.Fatalf("pass = %+v, want the 7-day tier", got.Pass)
	}
	if got.Savings != -36130 {
		t.Errorf("savings = %d, want -36130", got.Savings)
	}
	if len(got.Journeys) != 1 {
		t.Fatalf("journeys = %+v, want one leg", got.Journeys)
	}
	if j := got.Journeys[0]; j.From != "tokyo" || j.To != "osaka" || j.Fare != 13870 {
		t.Errorf("journey = %+v", j)
	}
}

func TestCalculateRailPassValue_LongRouteSaves(t *testing.T) {
	got := CalculateRailPassValue(7, []string{"tokyo", "osaka", "hiroshima", "fukuoka", "tokyo"})

	if got.Recommendation != model.PassRecommendationSave {
		t.Errorf("recommendation = %q, want save", got.Recommendation)
	}
	// 13870 + 10420 + 9150 + 22950
	if got.IndividualTotal != 56390 {
		t.Errorf("individual total = %d, want 56390", got.IndividualTotal)
	}
	if got.Pass == nil || got.Pass.ID != "jr-7" {
		t.Fatalf("pass = %+v, want the 7-day tier", got.Pass)
	}
	if got.Savings != 6390 {
		t.Errorf("savings = %d, want 6390", got.Savings)
	}
	if len(got.Journeys) != 4 {
		t.Errorf("journeys = %+v, want four legs", got.Journeys)
	}
}

func TestCalculateRailPassValue_TierSelection(t *testing.T) {
	tests := []struct {
		duration int
		wantID   string
	}{
		{1, "jr-7"},
		{7, "jr-7"},
		{8, "jr-14"},
		{14, "jr-14"},
		{21, "jr-21"},
	}

	for _, tt := range tests {
		got := CalculateRailPassValue(tt.duration, []string{"tokyo", "osaka"})
		if got.Pass == nil || got.Pass.ID != tt.wantID {
			t.Errorf("duration %d: pass = %+v, want %s", tt.duration, got.Pass, tt.wantID)
		}
	}
}

func TestCalculateRailPassValue_NoTierCoversDuration(t *testing.T) {
	got := CalculateRailPassValue(30, []string{"tokyo", "osaka"})

	if got.Recommendation != model.PassRecommendationSkip {
		t.Errorf("recommendation = %q, want skip", got.Recommendation)
	}
	if got.Pass != nil {
		t.Errorf("pass = %+v, want nil", got.Pass)
	}
	if got.Savings != 0 {
		t.Errorf("savings = %d, want 0", got.Savings)
	}
	if got.IndividualTotal != 13870 {
		t.Errorf("individual total = %d, want 13870", got.IndividualTotal)
	}
}

func TestCalculateRailPassValue_SkipsDegenerateLegs(t *testing.T) {
	t.Run("consecutive duplicate city", func(t *testing.T) {
		got := CalculateRailPassValue(3, []string{"tokyo", "tokyo", "osaka"})
		if len(got.Journeys) != 1 || got.IndividualTotal != 13870 {
			t.Errorf("journeys = %+v, total = %d", got.Journeys, got.IndividualTotal)
		}
	})

	t.Run("unknown fare omitted", func(t *testing.T) {
		got := CalculateRailPassValue(3, []string{"tokyo", "osaka", "naha"})
		if len(got.Journeys) != 1 || got.IndividualTotal != 13870 {
			t.Errorf("journeys = %+v, total = %d", got.Journeys, got.IndividualTotal)
		}
	})

	t.Run("single city has no legs", func(t *testing.T) {
		got := CalculateRailPassValue(3, []string{"tokyo"})
		if len(got.Journeys) != 0 || got.IndividualTotal != 0 {
			t.Errorf("journeys = %+v, total = %d", got.Journeys, got.IndividualTotal)
		}
		if got.Recommendation != model.PassRecommendationSkip {
			t.Errorf("recommendation = %q, want skip", got.Recommendation)
		}
	})
}

func TestCalculateRailPassValue_FareLookupIsSymmetric(t *testing.T) {
	forward := CalculateRailPassValue(3, []string{"tokyo", "osaka"})
	reverse := CalculateRailPassValue(3, []string{"osaka", "tokyo"})

	if forward.IndividualTotal != reverse.IndividualTotal {
		t.Errorf("forward total %d != reverse total %d", forward.IndividualTotal, reverse.IndividualTotal)
	}
}
