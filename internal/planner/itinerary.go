package planner

import (
	"github.com/google/uuid"

	"tabiplan/internal/model"
)

// The four activity operations are pure: they never modify the input trip.
// When an operation's target is missing they return the input trip by the
// same pointer, and in every other case they return a new Trip whose
// untouched days are the same *TripDay pointers as the input's, so callers
// can detect unchanged days by identity.

// AddActivity inserts an activity into the day with the given id. A nil
// position appends; an out-of-range position is clamped to [0, len]. Days
// are never synthesized here: callers addressing days by id must create
// them first.
func AddActivity(t *model.Trip, dayID string, activity model.TripActivity, position *int) *model.Trip {
	day, idx := t.DayByID(dayID)
	if day == nil {
		return t
	}
	return withDay(t, idx, insertActivity(day, activity, position))
}

// AddActivityAtIndex inserts an activity into the day at the given index,
// synthesizing missing days with empty activity lists up to the target.
// A negative index is a no-op.
func AddActivityAtIndex(t *model.Trip, dayIndex int, activity model.TripActivity, position *int) *model.Trip {
	if dayIndex < 0 {
		return t
	}

	days := t.CloneDays()
	for len(days) <= dayIndex {
		days = append(days, &model.TripDay{
			ID:         uuid.NewString(),
			Activities: []model.TripActivity{},
		})
	}
	days[dayIndex] = insertActivity(days[dayIndex], activity, position)

	return &model.Trip{ID: t.ID, Name: t.Name, Days: days, UpdatedAt: t.UpdatedAt}
}

// ReplaceActivity swaps the activity with the given id for a new one,
// keeping its position. Unknown day or activity ids are a no-op.
func ReplaceActivity(t *model.Trip, dayID, activityID string, replacement model.TripActivity) *model.Trip {
	day, idx := t.DayByID(dayID)
	if day == nil {
		return t
	}

	target := -1
	for i, a := range day.Activities {
		if a.ID == activityID {
			target = i
			break
		}
	}
	if target == -1 {
		return t
	}

	activities := make([]model.TripActivity, len(day.Activities))
	copy(activities, day.Activities)
	activities[target] = replacement

	return withDay(t, idx, cloneDayWith(day, activities))
}

// DeleteActivity removes the activity with the given id. Unknown day or
// activity ids are a no-op.
func DeleteActivity(t *model.Trip, dayID, activityID string) *model.Trip {
	day, idx := t.DayByID(dayID)
	if day == nil {
		return t
	}

	target := -1
	for i, a := range day.Activities {
		if a.ID == activityID {
			target = i
			break
		}
	}
	if target == -1 {
		return t
	}

	activities := make([]model.TripActivity, 0, len(day.Activities)-1)
	activities = append(activities, day.Activities[:target]...)
	activities = append(activities, day.Activities[target+1:]...)

	return withDay(t, idx, cloneDayWith(day, activities))
}

// ReorderActivities rebuilds the day's activity list following orderedIDs.
// Ids not present in the day are skipped silently; current activities not
// mentioned are dropped. An unknown day id is a no-op.
func ReorderActivities(t *model.Trip, dayID string, orderedIDs []string) *model.Trip {
	day, idx := t.DayByID(dayID)
	if day == nil {
		return t
	}

	byID := make(map[string]model.TripActivity, len(day.Activities))
	for _, a := range day.Activities {
		byID[a.ID] = a
	}

	activities := make([]model.TripActivity, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		if a, ok := byID[id]; ok {
			activities = append(activities, a)
		}
	}

	return withDay(t, idx, cloneDayWith(day, activities))
}

// withDay returns a new trip with the day at idx replaced. All other day
// pointers are shared with the input.
func withDay(t *model.Trip, idx int, day *model.TripDay) *model.Trip {
	days := t.CloneDays()
	days[idx] = day
	return &model.Trip{ID: t.ID, Name: t.Name, Days: days, UpdatedAt: t.UpdatedAt}
}

// cloneDayWith returns a new day carrying the same identity fields and the
// given activity list
func cloneDayWith(day *model.TripDay, activities []model.TripActivity) *model.TripDay {
	return &model.TripDay{
		ID:         day.ID,
		Date:       day.Date,
		CityID:     day.CityID,
		Activities: activities,
	}
}

// insertActivity returns a new day with the activity inserted at the
// clamped position (nil appends)
func insertActivity(day *model.TripDay, activity model.TripActivity, position *int) *model.TripDay {
	pos := len(day.Activities)
	if position != nil {
		pos = *position
		if pos < 0 {
			pos = 0
		}
		if pos > len(day.Activities) {
			pos = len(day.Activities)
		}
	}

	activities := make([]model.TripActivity, 0, len(day.Activities)+1)
	activities = append(activities, day.Activities[:pos]...)
	activities = append(activities, activity)
	activities = append(activities, day.Activities[pos:]...)

	return cloneDayWith(day, activities)
}
