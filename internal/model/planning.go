package model

// Planning warning types
const (
	WarningPacing        = "pacing"
	WarningHoliday       = "holiday"
	WarningRainySeason   = "seasonal_rainy"
	WarningCherryBlossom = "seasonal_cherry_blossom"
	WarningAutumn        = "seasonal_autumn"
	WarningWeather       = "weather"
	WarningDistance      = "distance"
)

// Warning severities, ordered info < caution < warning
const (
	SeverityInfo    = "info"
	SeverityCaution = "caution"
	SeverityWarning = "warning"
)

// PlanningWarning is an advisory (never blocking) signal about trip
// feasibility. Warnings are computed on demand and never persisted.
type PlanningWarning struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// WarningsSummary partitions a warning list by severity.
// Cautions + Warnings + Info always equals Total.
type WarningsSummary struct {
	Total    int `json:"total"`
	Cautions int `json:"cautions"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// RegionScore is one region's fit for the traveler's vibes and entry point
type RegionScore struct {
	Region             string `json:"region"`
	MatchScore         int    `json:"matchScore"`     // 0-100
	ProximityScore     int    `json:"proximityScore"` // 0-100
	TotalScore         int    `json:"totalScore"`
	IsRecommended      bool   `json:"isRecommended"`
	IsEntryPointRegion bool   `json:"isEntryPointRegion"`
}

// Rail pass recommendation outcomes
const (
	PassRecommendationSave = "save"
	PassRecommendationSkip = "skip"
)

// RailPass is one purchasable pass tier
type RailPass struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DurationDays int    `json:"durationDays"`
	Price        int    `json:"price"` // JPY
}

// Journey is one resolved point-to-point leg of the traveler's route
type Journey struct {
	From string `json:"from"`
	To   string `json:"to"`
	Fare int    `json:"fare"` // JPY
}

// RailPassValue is the break-even analysis of a rail pass against summed
// point-to-point fares for a city sequence
type RailPassValue struct {
	Recommendation  string    `json:"recommendation"` // save | skip
	IndividualTotal int       `json:"individualTotal"`
	Pass            *RailPass `json:"passType"`
	Savings         int       `json:"savings"`
	Journeys        []Journey `json:"journeys"`
}
