package model

// Known recommendation factor keys. Factor arrays may carry other keys for
// display, but only these survive conversion to the named-factor form.
const (
	FactorInterest      = "interest"
	FactorProximity     = "proximity"
	FactorBudget        = "budget"
	FactorAccessibility = "accessibility"
	FactorTime          = "time"
	FactorWeather       = "weather"
	FactorGroupFit      = "groupFit"
)

// knownFactors is the canonical factor ordering used when converting the
// named-factor form back into an array
var knownFactors = []string{
	FactorInterest,
	FactorProximity,
	FactorBudget,
	FactorAccessibility,
	FactorTime,
	FactorWeather,
	FactorGroupFit,
}

// ReasonFactor is one scored contribution to a recommendation
type ReasonFactor struct {
	Factor    string `json:"factor"`
	Score     int    `json:"score"` // 0-100
	Reasoning string `json:"reasoning"`
}

// RecommendationReason explains why an activity or place was suggested.
// Factors are kept in display order.
type RecommendationReason struct {
	PrimaryReason          string         `json:"primaryReason"`
	Factors                []ReasonFactor `json:"factors"`
	AlternativesConsidered []string       `json:"alternativesConsidered,omitempty"`
}

// FactorDetail is the score/reasoning pair of a single named factor
type FactorDetail struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// ReasonFactorMap is the object-of-named-factors encoding of a reason's
// factors, used by callers that address factors by name
type ReasonFactorMap struct {
	Interest      *FactorDetail `json:"interest,omitempty"`
	Proximity     *FactorDetail `json:"proximity,omitempty"`
	Budget        *FactorDetail `json:"budget,omitempty"`
	Accessibility *FactorDetail `json:"accessibility,omitempty"`
	Time          *FactorDetail `json:"time,omitempty"`
	Weather       *FactorDetail `json:"weather,omitempty"`
	GroupFit      *FactorDetail `json:"groupFit,omitempty"`
}

// FactorMap converts the factor array to the named-factor form. Unknown
// factor names are dropped silently; the seven known keys convert without
// loss. When a key appears more than once the first occurrence wins.
func (r RecommendationReason) FactorMap() ReasonFactorMap {
	var m ReasonFactorMap
	for _, f := range r.Factors {
		detail := &FactorDetail{Score: f.Score, Reasoning: f.Reasoning}
		switch f.Factor {
		case FactorInterest:
			if m.Interest == nil {
				m.Interest = detail
			}
		case FactorProximity:
			if m.Proximity == nil {
				m.Proximity = detail
			}
		case FactorBudget:
			if m.Budget == nil {
				m.Budget = detail
			}
		case FactorAccessibility:
			if m.Accessibility == nil {
				m.Accessibility = detail
			}
		case FactorTime:
			if m.Time == nil {
				m.Time = detail
			}
		case FactorWeather:
			if m.Weather == nil {
				m.Weather = detail
			}
		case FactorGroupFit:
			if m.GroupFit == nil {
				m.GroupFit = detail
			}
		}
	}
	return m
}

// Factors converts the named-factor form back into an array in canonical
// key order, skipping absent factors
func (m ReasonFactorMap) Factors() []ReasonFactor {
	byName := map[string]*FactorDetail{
		FactorInterest:      m.Interest,
		FactorProximity:     m.Proximity,
		FactorBudget:        m.Budget,
		FactorAccessibility: m.Accessibility,
		FactorTime:          m.Time,
		FactorWeather:       m.Weather,
		FactorGroupFit:      m.GroupFit,
	}

	factors := make([]ReasonFactor, 0, len(knownFactors))
	for _, name := range knownFactors {
		if detail := byName[name]; detail != nil {
			factors = append(factors, ReasonFactor{
				Factor:    name,
				Score:     detail.Score,
				Reasoning: detail.Reasoning,
			})
		}
	}
	return factors
}
