// Package planner is the trip planning engine: pure, deterministic functions
// that score regions, mutate itineraries immutably, refine single days
// against qualitative feedback, flag planning risks and compute rail-pass
// economics. The package performs no I/O and holds no mutable state; all
// inputs arrive validated from the calling layer.
package planner

import (
	"math"

	"tabiplan/internal/model"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in km
func HaversineKm(a, b model.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
