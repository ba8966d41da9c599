package planner

import (
	"tabiplan/internal/model"
	"tabiplan/internal/refdata"
)

// CalculateRailPassValue compares the cheapest rail pass covering the trip
// duration against summed point-to-point fares for the ordered city
// sequence. Consecutive duplicate cities produce no leg; legs with no known
// fare are omitted from the total rather than treated as zero or an error.
// When no pass tier covers the duration the recommendation is skip with no
// pass and zero savings.
func CalculateRailPassValue(durationDays int, cityIDs []string) model.RailPassValue {
	journeys := []model.Journey{}
	total := 0
	for i := 1; i < len(cityIDs); i++ {
		from, to := cityIDs[i-1], cityIDs[i]
		if from == to {
			continue
		}
		fare, ok := refdata.Fare(from, to)
		if !ok {
			continue
		}
		journeys = append(journeys, model.Journey{From: from, To: to, Fare: fare})
		total += fare
	}

	var pass *model.RailPass
	for _, p := range refdata.RailPasses() {
		if p.DurationDays >= durationDays {
			tier := p
			pass = &tier
			break
		}
	}

	if pass == nil {
		return model.RailPassValue{
			Recommendation:  model.PassRecommendationSkip,
			IndividualTotal: total,
			Journeys:        journeys,
		}
	}

	savings := total - pass.Price
	recommendation := model.PassRecommendationSkip
	if savings > 0 {
		recommendation = model.PassRecommendationSave
	}

	return model.RailPassValue{
		Recommendation:  recommendation,
		IndividualTotal: total,
		Pass:            pass,
		Savings:         savings,
		Journeys:        journeys,
	}
}
