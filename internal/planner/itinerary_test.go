package planner

import (
	"testing"

	"tabiplan/internal/model"
)

func testTrip() *model.Trip {
	return &model.Trip{
		ID:   "trip-1",
		Name: "Kansai classics",
		Days: []*model.TripDay{
			{
				ID:     "day-1",
				Date:   "2026-04-01",
				CityID: "kyoto",
				Activities: []model.TripActivity{
					{ID: "act-1", LocationID: "kyoto-fushimi-inari"},
					{ID: "act-2", LocationID: "kyoto-kinkakuji"},
					{ID: "act-3", LocationID: "kyoto-nishiki", MealType: "lunch"},
				},
			},
			{
				ID:     "day-2",
				Date:   "2026-04-02",
				CityID: "osaka",
				Activities: []model.TripActivity{
					{ID: "act-4", LocationID: "osaka-dotonbori", MealType: "dinner"},
				},
			},
		},
	}
}

func activityIDs(day *model.TripDay) []string {
	ids := make([]string, len(day.Activities))
	for i, a := range day.Activities {
		ids[i] = a.ID
	}
	return ids
}

func intPtr(v int) *int { return &v }

func TestAddActivity(t *testing.T) {
	tests := []struct {
		name     string
		dayID    string
		position *int
		wantIDs  []string
	}{
		{"append without position", "day-1", nil, []string{"act-1", "act-2", "act-3", "act-new"}},
		{"insert at front", "day-1", intPtr(0), []string{"act-new", "act-1", "act-2", "act-3"}},
		{"insert in middle", "day-1", intPtr(1), []string{"act-1", "act-new", "act-2", "act-3"}},
		{"clamp oversized position", "day-2", intPtr(100), []string{"act-4", "act-new"}},
		{"clamp negative position", "day-1", intPtr(-5), []string{"act-new", "act-1", "act-2", "act-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := testTrip()
			got := AddActivity(trip, tt.dayID, model.TripActivity{ID: "act-new"}, tt.position)

			if got == trip {
				t.Fatal("expected a new trip value")
			}
			day, _ := got.DayByID(tt.dayID)
			ids := activityIDs(day)
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("got %v, want %v", ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Fatalf("got %v, want %v", ids, tt.wantIDs)
				}
			}
		})
	}
}

func TestAddActivity_UnknownDayIsNoOp(t *testing.T) {
	trip := testTrip()
	if got := AddActivity(trip, "day-99", model.TripActivity{ID: "act-new"}, nil); got != trip {
		t.Error("expected the input trip back by reference")
	}
}

func TestAddActivity_PreservesOtherDayIdentity(t *testing.T) {
	trip := testTrip()
	got := AddActivity(trip, "day-1", model.TripActivity{ID: "act-new"}, nil)

	if got.Days[1] != trip.Days[1] {
		t.Error("untouched day must keep its pointer identity")
	}
	if got.Days[0] == trip.Days[0] {
		t.Error("mutated day must be a new value")
	}
	if len(trip.Days[0].Activities) != 3 {
		t.Error("input trip was mutated")
	}
}

func TestAddActivityAtIndex_SynthesizesMissingDays(t *testing.T) {
	trip := testTrip()
	got := AddActivityAtIndex(trip, 4, model.TripActivity{ID: "act-new"}, nil)

	if len(got.Days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(got.Days))
	}
	for i := 2; i < 4; i++ {
		if got.Days[i].ID == "" {
			t.Errorf("synthesized day %d has no id", i)
		}
		if len(got.Days[i].Activities) != 0 {
			t.Errorf("synthesized day %d should be empty", i)
		}
	}
	if ids := activityIDs(got.Days[4]); len(ids) != 1 || ids[0] != "act-new" {
		t.Errorf("target day activities = %v", ids)
	}
	if got.Days[0] != trip.Days[0] || got.Days[1] != trip.Days[1] {
		t.Error("existing days must keep their pointer identity")
	}
}

func TestAddActivityAtIndex_NegativeIndexIsNoOp(t *testing.T) {
	trip := testTrip()
	if got := AddActivityAtIndex(trip, -1, model.TripActivity{ID: "act-new"}, nil); got != trip {
		t.Error("expected the input trip back by reference")
	}
}

func TestReplaceActivity(t *testing.T) {
	trip := testTrip()
	got := ReplaceActivity(trip, "day-1", "act-2", model.TripActivity{ID: "act-2b", LocationID: "kyoto-gion"})

	day, _ := got.DayByID("day-1")
	ids := activityIDs(day)
	want := []string{"act-1", "act-2b", "act-3"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
	if got.Days[1] != trip.Days[1] {
		t.Error("untouched day must keep its pointer identity")
	}
}

func TestReplaceActivity_NoOps(t *testing.T) {
	trip := testTrip()

	if got := ReplaceActivity(trip, "day-1", "act-99", model.TripActivity{ID: "x"}); got != trip {
		t.Error("unknown activity id: expected the input trip back by reference")
	}
	if got := ReplaceActivity(trip, "day-99", "act-1", model.TripActivity{ID: "x"}); got != trip {
		t.Error("unknown day id: expected the input trip back by reference")
	}
}

func TestDeleteActivity(t *testing.T) {
	trip := testTrip()
	got := DeleteActivity(trip, "day-1", "act-2")

	day, _ := got.DayByID("day-1")
	ids := activityIDs(day)
	want := []string{"act-1", "act-3"}
	if len(ids) != 2 || ids[0] != want[0] || ids[1] != want[1] {
		t.Fatalf("got %v, want %v", ids, want)
	}
	if got.Days[1] != trip.Days[1] {
		t.Error("untouched day must keep its pointer identity")
	}
}

func TestDeleteActivity_NoOps(t *testing.T) {
	trip := testTrip()

	if got := DeleteActivity(trip, "day-1", "act-99"); got != trip {
		t.Error("unknown activity id: expected the input trip back by reference")
	}
	if got := DeleteActivity(trip, "day-99", "act-1"); got != trip {
		t.Error("unknown day id: expected the input trip back by reference")
	}
}

func TestReorderActivities(t *testing.T) {
	tests := []struct {
		name       string
		orderedIDs []string
		wantIDs    []string
	}{
		{"full reorder", []string{"act-3", "act-1", "act-2"}, []string{"act-3", "act-1", "act-2"}},
		{"unknown ids skipped", []string{"act-2", "act-99", "act-1", "act-3"}, []string{"act-2", "act-1", "act-3"}},
		{"unmentioned activities dropped", []string{"act-3"}, []string{"act-3"}},
		{"empty order empties the day", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := testTrip()
			got := ReorderActivities(trip, "day-1", tt.orderedIDs)

			day, _ := got.DayByID("day-1")
			ids := activityIDs(day)
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("got %v, want %v", ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Fatalf("got %v, want %v", ids, tt.wantIDs)
				}
			}
			if got.Days[1] != trip.Days[1] {
				t.Error("untouched day must keep its pointer identity")
			}
		})
	}
}

func TestReorderActivities_UnknownDayIsNoOp(t *testing.T) {
	trip := testTrip()
	if got := ReorderActivities(trip, "day-99", []string{"act-1"}); got != trip {
		t.Error("expected the input trip back by reference")
	}
}

func TestOperations_PreserveDayIdentityFields(t *testing.T) {
	trip := testTrip()
	got := DeleteActivity(trip, "day-1", "act-1")

	day, _ := got.DayByID("day-1")
	if day.Date != "2026-04-01" || day.CityID != "kyoto" {
		t.Errorf("day identity fields changed: %+v", day)
	}
}
