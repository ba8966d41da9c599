package model

// RegionRecommendationRequest asks for scored regions or auto-selections
type RegionRecommendationRequest struct {
	Vibes      []string    `json:"vibes"`
	EntryPoint *EntryPoint `json:"entryPoint,omitempty"`
	Duration   int         `json:"duration,omitempty"`
}

// RegionRecommendationResponse carries scored regions plus the ids that
// would be auto-selected for the requested duration
type RegionRecommendationResponse struct {
	Scores       []RegionScore `json:"scores"`
	AutoSelected []string      `json:"autoSelected"`
}

// CityRecommendationResponse carries the auto-selected city ids
type CityRecommendationResponse struct {
	Cities []string `json:"cities"`
}

// RailPassRequest asks for a rail-pass break-even analysis
type RailPassRequest struct {
	Duration int      `json:"duration" binding:"required"`
	Cities   []string `json:"cities" binding:"required"`
}

// WarningsResponse carries detected warnings and their severity summary
type WarningsResponse struct {
	Warnings []PlanningWarning `json:"warnings"`
	Summary  WarningsSummary   `json:"summary"`
}

// CreateTripRequest builds a new trip from accumulated planning intent
type CreateTripRequest struct {
	Name    string          `json:"name" binding:"required"`
	Builder TripBuilderData `json:"builder"`
}

// RenameTripRequest updates trip metadata
type RenameTripRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddActivityRequest inserts an activity into a day. A nil Position appends.
type AddActivityRequest struct {
	Activity TripActivity `json:"activity" binding:"required"`
	Position *int         `json:"position,omitempty"`
}

// ReplaceActivityRequest swaps an activity in place
type ReplaceActivityRequest struct {
	Activity TripActivity `json:"activity" binding:"required"`
}

// ReorderActivitiesRequest rebuilds a day's activity order
type ReorderActivitiesRequest struct {
	OrderedIDs []string `json:"orderedIds" binding:"required"`
}

// RefineDayRequest applies a qualitative refinement to one day
type RefineDayRequest struct {
	Type string `json:"type" binding:"required"`
}
