package model

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// Travel style constants
const (
	StyleRelaxed  = "relaxed"
	StyleBalanced = "balanced"
	StyleFast     = "fast"
)

// Entry point types
const (
	EntryAirport = "airport"
	EntryCity    = "city"
	EntryHotel   = "hotel"
	EntryStation = "station"
)

// Maximum number of vibes/interests a traveler can select
const maxPreferenceTags = 5

// DateRange is an inclusive trip date range, YYYY-MM-DD
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// EntryPoint is the traveler's arrival location, used as the proximity
// anchor for region scoring
type EntryPoint struct {
	Type        string      `json:"type"`
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	RegionID    string      `json:"regionId,omitempty"`
}

// Accessibility holds the traveler's accessibility and dietary needs
type Accessibility struct {
	Mobility     bool     `json:"mobility"`
	Dietary      []string `json:"dietary,omitempty"`
	DietaryOther string   `json:"dietaryOther,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// TripBuilderData is the traveler's accumulated planning intent. It arrives
// from a web form, so nothing in it is trusted as given: Normalize is the
// single validation boundary and runs on every mutation before the value is
// used or persisted.
type TripBuilderData struct {
	Dates         DateRange      `json:"dates"`
	Regions       []string       `json:"regions,omitempty"`
	Cities        []string       `json:"cities,omitempty"`
	Vibes         []string       `json:"vibes,omitempty"`
	Interests     []string       `json:"interests,omitempty"`
	Style         string         `json:"style,omitempty"`
	Duration      int            `json:"duration,omitempty"` // days, derived from Dates when both are set
	EntryPoint    *EntryPoint    `json:"entryPoint,omitempty"`
	Accessibility *Accessibility `json:"accessibility,omitempty"`
}

// vibeAliases maps common form-provided synonyms to canonical vibe ids.
// Unrecognized values pass through lowercased so new vibes don't need a
// code change to survive normalization.
var vibeAliases = map[string]string{
	"foodie":       "food",
	"culinary":     "food",
	"eating":       "food",
	"gourmet":      "food",
	"history":      "culture",
	"historical":   "culture",
	"temples":      "culture",
	"sightseeing":  "culture",
	"traditional":  "culture",
	"outdoors":     "nature",
	"hiking":       "nature",
	"scenery":      "nature",
	"mountains":    "nature",
	"urban":        "city",
	"metropolis":   "city",
	"nightlife":    "entertainment",
	"party":        "entertainment",
	"chill":        "relaxation",
	"onsen":        "relaxation",
	"hot springs":  "relaxation",
	"wellness":     "relaxation",
	"anime":        "pop_culture",
	"pop culture":  "pop_culture",
	"otaku":        "pop_culture",
	"beaches":      "beach",
	"island":       "beach",
	"ski":          "winter_sports",
	"snow":         "winter_sports",
	"snowboarding": "winter_sports",
}

// CanonicalVibe maps a raw vibe tag to its canonical id
func CanonicalVibe(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := vibeAliases[v]; ok {
		return canonical
	}
	return v
}

// Normalize cleans the builder data in place: blank entries are dropped,
// lists are deduplicated preserving first-seen order, vibes are mapped to
// canonical ids and capped, and the duration is derived from the date range
// when both endpoints are set. Invalid styles are dropped rather than kept.
func (d *TripBuilderData) Normalize() {
	d.Regions = cleanList(d.Regions)
	d.Cities = cleanList(d.Cities)

	d.Vibes = lo.Map(d.Vibes, func(v string, _ int) string { return CanonicalVibe(v) })
	d.Vibes = cleanList(d.Vibes)
	if len(d.Vibes) > maxPreferenceTags {
		d.Vibes = d.Vibes[:maxPreferenceTags]
	}

	d.Interests = cleanList(d.Interests)
	if len(d.Interests) > maxPreferenceTags {
		d.Interests = d.Interests[:maxPreferenceTags]
	}

	switch d.Style {
	case StyleRelaxed, StyleBalanced, StyleFast, "":
	default:
		d.Style = ""
	}

	if d.Accessibility != nil {
		d.Accessibility.Dietary = cleanList(d.Accessibility.Dietary)
		d.Accessibility.DietaryOther = strings.TrimSpace(d.Accessibility.DietaryOther)
		d.Accessibility.Notes = strings.TrimSpace(d.Accessibility.Notes)
	}

	if days := d.Dates.Days(); days > 0 {
		d.Duration = days
	}
}

// Days returns the inclusive length of the range in days, or 0 when either
// endpoint is missing or unparseable
func (r DateRange) Days() int {
	if r.Start == "" || r.End == "" {
		return 0
	}
	start, err := time.Parse("2006-01-02", r.Start)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", r.End)
	if err != nil {
		return 0
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	return days
}

// cleanList trims entries, drops blanks and deduplicates preserving order
func cleanList(values []string) []string {
	trimmed := lo.FilterMap(values, func(v string, _ int) (string, bool) {
		v = strings.TrimSpace(v)
		return v, v != ""
	})
	return lo.Uniq(trimmed)
}
