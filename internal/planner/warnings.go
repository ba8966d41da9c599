package planner

import (
	"fmt"
	"time"

	"tabiplan/internal/model"
	"tabiplan/internal/refdata"
)

// Centroid distance beyond which a region pair is flagged even when it is
// not in the known far-pair table
const farDistanceKm = 800.0

// DetectPlanningWarnings scans the traveler's planning intent and emits
// advisory warnings about pacing, holiday crowding, seasonal conditions and
// inter-region distance. The result order carries no meaning; consumers
// group by type for display.
func DetectPlanningWarnings(data *model.TripBuilderData) []model.PlanningWarning {
	warnings := []model.PlanningWarning{}
	warnings = append(warnings, pacingWarnings(data)...)
	warnings = append(warnings, holidayWarnings(data.Dates)...)
	warnings = append(warnings, seasonalWarnings(data.Dates)...)
	warnings = append(warnings, distanceWarnings(data.Regions)...)
	return warnings
}

// SummarizeWarnings partitions warnings by severity. The three counts
// always sum to Total.
func SummarizeWarnings(warnings []model.PlanningWarning) model.WarningsSummary {
	summary := model.WarningsSummary{Total: len(warnings)}
	for _, w := range warnings {
		switch w.Severity {
		case model.SeverityCaution:
			summary.Cautions++
		case model.SeverityWarning:
			summary.Warnings++
		default:
			summary.Info++
		}
	}
	return summary
}

// pacingWarnings rates the city-count-to-day-count ratio. Computed only
// when both cities and a duration are known.
func pacingWarnings(data *model.TripBuilderData) []model.PlanningWarning {
	cities := len(data.Cities)
	days := data.Duration
	if days == 0 {
		days = data.Dates.Days()
	}
	if cities == 0 || days == 0 {
		return nil
	}

	ratio := float64(cities) / float64(days)
	var severity, message string
	switch {
	case cities >= 5 && days <= 5 && ratio >= 1:
		severity = model.SeverityWarning
		message = fmt.Sprintf("%d cities in %d days means you'll spend most of your trip in transit. Cut the list down to two or three bases.", cities, days)
	case ratio >= 1:
		severity = model.SeverityCaution
		message = fmt.Sprintf("%d cities in %d days is a city a day. You'll see stations more than sights; consider dropping a stop.", cities, days)
	case ratio >= 0.6:
		severity = model.SeverityInfo
		message = fmt.Sprintf("%d cities in %d days is a brisk pace. Doable, but leave slack for travel days.", cities, days)
	default:
		return nil
	}

	return []model.PlanningWarning{{
		Type:     model.WarningPacing,
		Severity: severity,
		Title:    "Fast-paced itinerary",
		Message:  message,
	}}
}

// holidayWarnings checks the trip date range against the fixed annual
// holiday windows, inclusive on both ends. Year-wrapping windows (New Year)
// are handled by the window itself.
func holidayWarnings(dates model.DateRange) []model.PlanningWarning {
	var warnings []model.PlanningWarning
	for _, h := range refdata.HolidayWindows() {
		if rangeOverlapsWindow(dates, h.Window) {
			warnings = append(warnings, model.PlanningWarning{
				Type:     model.WarningHoliday,
				Severity: model.SeverityCaution,
				Title:    h.Name + " holiday period",
				Message:  h.Message,
			})
		}
	}
	return warnings
}

// seasonalWarnings checks the trip date range against the seasonal windows.
// Each window fires at most once; overlapping windows may both fire.
func seasonalWarnings(dates model.DateRange) []model.PlanningWarning {
	var warnings []model.PlanningWarning
	for _, s := range refdata.SeasonalWindows() {
		if rangeOverlapsWindow(dates, s.Window) {
			warnings = append(warnings, model.PlanningWarning{
				Type:     s.Type,
				Severity: s.Severity,
				Title:    s.Title,
				Message:  s.Message,
			})
		}
	}
	return warnings
}

// distanceWarnings flags every unordered pair of selected regions that is a
// known far combination or whose centroids are more than farDistanceKm
// apart
func distanceWarnings(regionIDs []string) []model.PlanningWarning {
	var warnings []model.PlanningWarning
	for i := 0; i < len(regionIDs); i++ {
		for j := i + 1; j < len(regionIDs); j++ {
			a, okA := refdata.RegionByID(regionIDs[i])
			b, okB := refdata.RegionByID(regionIDs[j])
			if !okA || !okB {
				continue
			}

			dist := HaversineKm(a.Centroid, b.Centroid)
			if !refdata.IsFarRegionPair(a.ID, b.ID) && dist <= farDistanceKm {
				continue
			}

			warnings = append(warnings, model.PlanningWarning{
				Type:     model.WarningDistance,
				Severity: model.SeverityWarning,
				Title:    fmt.Sprintf("%s and %s are far apart", a.Name, b.Name),
				Message:  fmt.Sprintf("%s and %s are about %.0f km apart. Covering both usually means a flight; consider splitting them into separate trips.", a.Name, b.Name, dist),
			})
		}
	}
	return warnings
}

// rangeOverlapsWindow reports whether any day of the inclusive date range
// falls inside the annual window. Unparseable or open ranges never match.
func rangeOverlapsWindow(dates model.DateRange, window refdata.CalendarWindow) bool {
	start, err := time.Parse("2006-01-02", dates.Start)
	if err != nil {
		return false
	}
	end, err := time.Parse("2006-01-02", dates.End)
	if err != nil || end.Before(start) {
		return false
	}

	// A full year covers every window
	if end.Sub(start) >= 366*24*time.Hour {
		return true
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if window.Contains(int(d.Month()), d.Day()) {
			return true
		}
	}
	return false
}
