package model

import "time"

// Time slot constants for activities without explicit start/end times
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// Coordinates is a WGS84 lat/lng pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationSnapshot is the denormalized location data carried by an activity,
// frozen at the time the activity was added
type LocationSnapshot struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
}

// TripActivity is a single scheduled stop within a day. Activities are
// ordered by intended execution order, not strictly by time.
type TripActivity struct {
	ID          string                `json:"id"`
	LocationID  string                `json:"locationId"`
	Location    *LocationSnapshot     `json:"location,omitempty"`
	TimeSlot    string                `json:"timeSlot,omitempty"`
	StartTime   string                `json:"startTime,omitempty"`
	EndTime     string                `json:"endTime,omitempty"`
	DurationMin int                   `json:"duration"`
	MealType    string                `json:"mealType,omitempty"`
	Reasoning   *RecommendationReason `json:"reasoning,omitempty"`
}

// TripDay is one day of an itinerary. Days are held by pointer so that
// unchanged days keep their identity across immutable trip updates; calling
// UIs rely on pointer comparison to skip re-rendering untouched days.
type TripDay struct {
	ID         string         `json:"id"`
	Date       string         `json:"date"` // YYYY-MM-DD
	CityID     string         `json:"cityId"`
	Activities []TripActivity `json:"activities"`
}

// Trip is an immutable itinerary. Every mutation produces a new Trip value;
// the engine never edits a Trip in place.
type Trip struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Days      []*TripDay `json:"days"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CloneDays returns a shallow copy of the day slice. The day pointers are
// shared; only the slice header is new, so a single day can be swapped out
// without touching the others.
func (t *Trip) CloneDays() []*TripDay {
	days := make([]*TripDay, len(t.Days))
	copy(days, t.Days)
	return days
}

// DayByID returns the day with the given id and its index, or (nil, -1)
func (t *Trip) DayByID(dayID string) (*TripDay, int) {
	for i, d := range t.Days {
		if d.ID == dayID {
			return d, i
		}
	}
	return nil, -1
}
