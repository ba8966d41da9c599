package planner

import (
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"tabiplan/internal/model"
	"tabiplan/internal/refdata"
)

// RefinementType is a qualitative complaint about a single day
type RefinementType string

// The supported refinement types
const (
	RefineTooBusy         RefinementType = "too_busy"
	RefineTooLight        RefinementType = "too_light"
	RefineMoreFood        RefinementType = "more_food"
	RefineMoreCulture     RefinementType = "more_culture"
	RefineMoreKidFriendly RefinementType = "more_kid_friendly"
	RefineMoreRest        RefinementType = "more_rest"
)

// refinePolicy turns one day into its refined version. Policies must keep
// the day's id, date and city and must not touch the rest of the trip.
type refinePolicy func(day *model.TripDay) *model.TripDay

var refinePolicies = map[RefinementType]refinePolicy{
	RefineTooBusy:         refineTooBusy,
	RefineTooLight:        refineTooLight,
	RefineMoreFood:        categoryPolicy(refdata.CategoryFood),
	RefineMoreCulture:     categoryPolicy(refdata.CategoryCulture),
	RefineMoreKidFriendly: refineMoreKidFriendly,
	RefineMoreRest:        refineMoreRest,
}

// ValidRefinementType reports whether t names a known refinement
func ValidRefinementType(t RefinementType) bool {
	_, ok := refinePolicies[t]
	return ok
}

// RefineDay produces a revised version of trip.Days[dayIndex] for the given
// refinement type. The returned day always carries the same id, date and
// city as the input day; other days of the trip are never touched. Callers
// splice the result back into the trip themselves.
//
// Precondition: trip.Days[dayIndex] exists — the calling layer validates the
// index. An unknown refinement type returns the day unchanged.
func RefineDay(trip *model.Trip, dayIndex int, refinement RefinementType) *model.TripDay {
	day := trip.Days[dayIndex]
	policy, ok := refinePolicies[refinement]
	if !ok {
		return day
	}
	return policy(day)
}

// refineTooBusy drops the lowest-scoring third of the day's activities (at
// least one), never dropping the last meal-tagged activity if the day had
// one. A day with a single activity is left alone.
func refineTooBusy(day *model.TripDay) *model.TripDay {
	n := len(day.Activities)
	if n <= 1 {
		return day
	}

	dropTarget := n / 3
	if dropTarget < 1 {
		dropTarget = 1
	}

	mealsLeft := lo.CountBy(day.Activities, func(a model.TripActivity) bool { return a.MealType != "" })

	drop := make(map[int]bool, dropTarget)
	for _, idx := range indicesByScoreAsc(day.Activities) {
		if len(drop) == dropTarget {
			break
		}
		a := day.Activities[idx]
		if a.MealType != "" {
			if mealsLeft == 1 {
				continue
			}
			mealsLeft--
		}
		drop[idx] = true
	}

	activities := make([]model.TripActivity, 0, n-len(drop))
	for i, a := range day.Activities {
		if !drop[i] {
			activities = append(activities, a)
		}
	}
	return cloneDayWith(day, activities)
}

// refineTooLight appends up to two unused locations from the day's city
// into its least-loaded time slots
func refineTooLight(day *model.TripDay) *model.TripDay {
	candidates := unusedLocations(day, func(refdata.Location) bool { return true })
	if len(candidates) == 0 {
		return day
	}
	if len(candidates) > 2 {
		candidates = candidates[:2]
	}

	activities := make([]model.TripActivity, len(day.Activities), len(day.Activities)+len(candidates))
	copy(activities, day.Activities)
	for _, loc := range candidates {
		activities = append(activities, model.TripActivity{
			ID:          uuid.NewString(),
			LocationID:  loc.ID,
			Location:    snapshot(loc),
			TimeSlot:    leastLoadedSlot(activities),
			DurationMin: 90,
			MealType:    loc.MealType,
		})
	}
	return cloneDayWith(day, activities)
}

// categoryPolicy biases the day toward one location category: the lowest-
// scoring activities outside the category are replaced by unused in-category
// locations, keeping the replaced activity's slot and duration. Activity
// count is unchanged.
func categoryPolicy(category string) refinePolicy {
	return func(day *model.TripDay) *model.TripDay {
		return replaceNonMatching(day, func(a model.TripActivity) bool {
			return activityCategory(a) == category
		}, func(loc refdata.Location) bool {
			return loc.Category == category
		})
	}
}

// refineMoreKidFriendly is the category policy keyed on the kid-friendly
// flag instead of a category
func refineMoreKidFriendly(day *model.TripDay) *model.TripDay {
	return replaceNonMatching(day, func(a model.TripActivity) bool {
		if loc, ok := refdata.LocationByID(a.LocationID); ok {
			return loc.KidFriendly
		}
		return false
	}, func(loc refdata.Location) bool {
		return loc.KidFriendly
	})
}

// refineMoreRest trims the day to at most three activities (dropping the
// lowest-scoring first, meals protected) and inserts an explicit rest break
// in the middle of the day
func refineMoreRest(day *model.TripDay) *model.TripDay {
	trimmed := day
	for len(trimmed.Activities) > 3 {
		trimmed = refineTooBusy(trimmed)
	}

	rest := model.TripActivity{
		ID:          uuid.NewString(),
		LocationID:  "rest-break",
		TimeSlot:    model.SlotAfternoon,
		DurationMin: 60,
	}
	if loc, ok := restLocation(day.CityID); ok {
		rest.LocationID = loc.ID
		rest.Location = snapshot(loc)
	}

	mid := len(trimmed.Activities) / 2
	activities := make([]model.TripActivity, 0, len(trimmed.Activities)+1)
	activities = append(activities, trimmed.Activities[:mid]...)
	activities = append(activities, rest)
	activities = append(activities, trimmed.Activities[mid:]...)
	return cloneDayWith(day, activities)
}

// replaceNonMatching swaps up to two of the lowest-scoring activities that
// fail the match predicate for unused locations that pass the candidate
// predicate. Slot and duration carry over from the replaced activity.
func replaceNonMatching(day *model.TripDay, matches func(model.TripActivity) bool, wanted func(refdata.Location) bool) *model.TripDay {
	candidates := unusedLocations(day, wanted)
	if len(candidates) == 0 {
		return day
	}

	var nonMatching []int
	for _, idx := range indicesByScoreAsc(day.Activities) {
		if !matches(day.Activities[idx]) {
			nonMatching = append(nonMatching, idx)
		}
	}
	if len(nonMatching) == 0 {
		return day
	}

	replacements := 2
	if len(candidates) < replacements {
		replacements = len(candidates)
	}
	if len(nonMatching) < replacements {
		replacements = len(nonMatching)
	}

	activities := make([]model.TripActivity, len(day.Activities))
	copy(activities, day.Activities)
	for i := 0; i < replacements; i++ {
		idx := nonMatching[i]
		loc := candidates[i]
		activities[idx] = model.TripActivity{
			ID:          uuid.NewString(),
			LocationID:  loc.ID,
			Location:    snapshot(loc),
			TimeSlot:    day.Activities[idx].TimeSlot,
			StartTime:   day.Activities[idx].StartTime,
			EndTime:     day.Activities[idx].EndTime,
			DurationMin: day.Activities[idx].DurationMin,
			MealType:    loc.MealType,
		}
	}
	return cloneDayWith(day, activities)
}

// activityScore is the mean of an activity's reasoning factor scores, or
// neutral when no reasoning is attached
func activityScore(a model.TripActivity) float64 {
	if a.Reasoning == nil || len(a.Reasoning.Factors) == 0 {
		return neutralScore
	}
	sum := 0
	for _, f := range a.Reasoning.Factors {
		sum += f.Score
	}
	return float64(sum) / float64(len(a.Reasoning.Factors))
}

// indicesByScoreAsc returns activity indices ordered by ascending score,
// ties keeping day order
func indicesByScoreAsc(activities []model.TripActivity) []int {
	indices := make([]int, len(activities))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return activityScore(activities[indices[i]]) < activityScore(activities[indices[j]])
	})
	return indices
}

// unusedLocations returns the day's city pool filtered to locations not
// already scheduled and passing the predicate, in catalog order
func unusedLocations(day *model.TripDay, wanted func(refdata.Location) bool) []refdata.Location {
	used := make(map[string]bool, len(day.Activities))
	for _, a := range day.Activities {
		used[a.LocationID] = true
	}

	var out []refdata.Location
	for _, loc := range refdata.LocationsByCity(day.CityID) {
		if !used[loc.ID] && wanted(loc) {
			out = append(out, loc)
		}
	}
	return out
}

// activityCategory resolves an activity's category from its snapshot or the
// location catalog
func activityCategory(a model.TripActivity) string {
	if a.Location != nil && a.Location.Category != "" {
		return a.Location.Category
	}
	if loc, ok := refdata.LocationByID(a.LocationID); ok {
		return loc.Category
	}
	return ""
}

// leastLoadedSlot picks the time slot with the fewest activities, ties
// resolved morning, afternoon, evening
func leastLoadedSlot(activities []model.TripActivity) string {
	counts := map[string]int{}
	for _, a := range activities {
		counts[a.TimeSlot]++
	}

	best := model.SlotMorning
	for _, slot := range []string{model.SlotMorning, model.SlotAfternoon, model.SlotEvening} {
		if counts[slot] < counts[best] {
			best = slot
		}
	}
	return best
}

// restLocation finds a rest-category location in the city's pool
func restLocation(cityID string) (refdata.Location, bool) {
	for _, loc := range refdata.LocationsByCity(cityID) {
		if loc.Category == refdata.CategoryRest {
			return loc, true
		}
	}
	return refdata.Location{}, false
}

// snapshot freezes a catalog location into the denormalized form carried by
// an activity
func snapshot(loc refdata.Location) *model.LocationSnapshot {
	return &model.LocationSnapshot{
		Name:        loc.Name,
		Category:    loc.Category,
		Coordinates: loc.Coordinates,
	}
}
