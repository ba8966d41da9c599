package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"tabiplan/internal/model"
	"tabiplan/internal/planner"
	"tabiplan/internal/refdata"
)

const dateLayout = "2006-01-02"

// Activities seeded per day by travel style
var seedCounts = map[string]int{
	model.StyleRelaxed:  2,
	model.StyleBalanced: 3,
	model.StyleFast:     4,
}

// BuildTrip converts normalized planning intent into an initial itinerary:
// one day per date of the range (or per duration day), cities distributed
// across the days contiguously, each day seeded with its city's best-fitting
// catalog locations. The builder data must already be normalized.
func BuildTrip(recommender *planner.Recommender, name string, data *model.TripBuilderData) *model.Trip {
	cityIDs := data.Cities
	if len(cityIDs) == 0 {
		cityIDs = recommender.AutoSelectCities(data.Vibes, data.EntryPoint)
	}

	days := data.Duration
	if days == 0 {
		days = len(cityIDs)
	}

	trip := &model.Trip{ID: uuid.NewString(), Name: name}
	if days == 0 {
		return trip
	}

	var start time.Time
	hasStart := false
	if t, err := time.Parse(dateLayout, data.Dates.Start); err == nil {
		start = t
		hasStart = true
	}

	perDay := seedCounts[model.StyleBalanced]
	if n, ok := seedCounts[data.Style]; ok {
		perDay = n
	}

	for i := 0; i < days; i++ {
		day := &model.TripDay{ID: uuid.NewString(), Activities: []model.TripActivity{}}
		if hasStart {
			day.Date = start.AddDate(0, 0, i).Format(dateLayout)
		}
		if len(cityIDs) > 0 {
			day.CityID = cityIDs[i*len(cityIDs)/days]
		}
		seedDay(day, data, perDay)
		trip.Days = append(trip.Days, day)
	}
	return trip
}

// seedDay fills a day with up to perDay locations from its city's pool,
// best-scoring first, each carrying the recommendation reasoning that
// produced it
func seedDay(day *model.TripDay, data *model.TripBuilderData, perDay int) {
	pool := refdata.LocationsByCity(day.CityID)
	if len(pool) == 0 {
		return
	}

	type scored struct {
		loc    refdata.Location
		total  int
		reason *model.RecommendationReason
	}
	candidates := make([]scored, 0, len(pool))
	for _, loc := range pool {
		total, reason := scoreLocation(loc, data)
		candidates = append(candidates, scored{loc: loc, total: total, reason: reason})
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].total > candidates[j].total })

	if perDay > len(candidates) {
		perDay = len(candidates)
	}

	slots := []string{model.SlotMorning, model.SlotAfternoon, model.SlotEvening}
	for i := 0; i < perDay; i++ {
		loc := candidates[i].loc
		day.Activities = append(day.Activities, model.TripActivity{
			ID:         uuid.NewString(),
			LocationID: loc.ID,
			Location: &model.LocationSnapshot{
				Name:        loc.Name,
				Category:    loc.Category,
				Coordinates: loc.Coordinates,
			},
			TimeSlot:    slotForLocation(loc, slots[i%len(slots)]),
			DurationMin: 90,
			MealType:    loc.MealType,
			Reasoning:   candidates[i].reason,
		})
	}
}

// scoreLocation rates a location against the traveler's preferences and
// builds the reasoning attached to the seeded activity
func scoreLocation(loc refdata.Location, data *model.TripBuilderData) (int, *model.RecommendationReason) {
	interest := model.ReasonFactor{Factor: model.FactorInterest, Score: 55, Reasoning: "Popular with most visitors"}
	switch {
	case lo.Contains(data.Vibes, loc.Category):
		interest.Score = 90
		interest.Reasoning = fmt.Sprintf("Matches your %s vibe", loc.Category)
	case lo.Contains(data.Interests, loc.Category):
		interest.Score = 85
		interest.Reasoning = fmt.Sprintf("Matches your interest in %s", loc.Category)
	}

	groupFit := model.ReasonFactor{Factor: model.FactorGroupFit, Score: 60, Reasoning: "Suits most travel groups"}
	if loc.KidFriendly {
		groupFit.Score = 80
		groupFit.Reasoning = "Works well with children along"
	}

	factors := []model.ReasonFactor{interest, groupFit}
	if data.Accessibility != nil && data.Accessibility.Mobility {
		factors = append(factors, model.ReasonFactor{
			Factor:    model.FactorAccessibility,
			Score:     65,
			Reasoning: "Reachable without long walks; verify step-free access on site",
		})
	}

	total := 0
	for _, f := range factors {
		total += f.Score
	}
	total /= len(factors)

	return total, &model.RecommendationReason{
		PrimaryReason: interest.Reasoning,
		Factors:       factors,
	}
}

// slotForLocation places meals in their natural slot and everything else in
// the suggested one
func slotForLocation(loc refdata.Location, suggested string) string {
	switch loc.MealType {
	case "breakfast":
		return model.SlotMorning
	case "lunch":
		return model.SlotAfternoon
	case "dinner":
		return model.SlotEvening
	}
	return suggested
}
