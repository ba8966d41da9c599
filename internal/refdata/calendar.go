package refdata

import "tabiplan/internal/model"

// CalendarWindow is an annual month/day window independent of year. A window
// whose start numerically exceeds its end wraps the year boundary
// (e.g. Dec 30 - Jan 3).
type CalendarWindow struct {
	StartMonth int
	StartDay   int
	EndMonth   int
	EndDay     int
}

// Wraps reports whether the window crosses the year boundary
func (w CalendarWindow) Wraps() bool {
	if w.StartMonth != w.EndMonth {
		return w.StartMonth > w.EndMonth
	}
	return w.StartDay > w.EndDay
}

// Contains reports whether the given month/day falls inside the window,
// boundaries inclusive
func (w CalendarWindow) Contains(month, day int) bool {
	afterStart := month > w.StartMonth || (month == w.StartMonth && day >= w.StartDay)
	beforeEnd := month < w.EndMonth || (month == w.EndMonth && day <= w.EndDay)
	if w.Wraps() {
		return afterStart || beforeEnd
	}
	return afterStart && beforeEnd
}

// HolidayWindow is a fixed annual holiday period with heavy domestic travel
type HolidayWindow struct {
	Window  CalendarWindow
	Name    string
	Message string
}

// SeasonalWindow is a recurring seasonal condition worth flagging
type SeasonalWindow struct {
	Window   CalendarWindow
	Type     string // model.Warning* type
	Severity string
	Title    string
	Message  string
}

// holidayWindows are Japan's major domestic travel peaks
var holidayWindows = []HolidayWindow{
	{Window: CalendarWindow{StartMonth: 12, StartDay: 30, EndMonth: 1, EndDay: 3}, Name: "New Year (Oshogatsu)", Message: "Your trip overlaps the New Year holiday. Expect closed businesses, sold-out trains and peak hotel prices from December 30 to January 3."},
	{Window: CalendarWindow{StartMonth: 4, StartDay: 29, EndMonth: 5, EndDay: 5}, Name: "Golden Week", Message: "Your trip overlaps Golden Week, Japan's busiest travel period. Book trains and hotels well in advance."},
	{Window: CalendarWindow{StartMonth: 8, StartDay: 11, EndMonth: 8, EndDay: 16}, Name: "Obon", Message: "Your trip overlaps Obon, when much of Japan travels home. Long-distance trains fill up quickly."},
	{Window: CalendarWindow{StartMonth: 9, StartDay: 19, EndMonth: 9, EndDay: 23}, Name: "Silver Week", Message: "Your trip overlaps Silver Week. Popular sights and trains will be crowded."},
}

// seasonalWindows are year-independent conditions; overlapping windows may
// all fire, but each window fires at most once per trip
var seasonalWindows = []SeasonalWindow{
	{Window: CalendarWindow{StartMonth: 6, StartDay: 1, EndMonth: 6, EndDay: 30}, Type: model.WarningRainySeason, Severity: model.SeverityCaution, Title: "Rainy season", Message: "June is tsuyu, the rainy season. Pack for rain and plan indoor alternatives."},
	{Window: CalendarWindow{StartMonth: 3, StartDay: 20, EndMonth: 4, EndDay: 10}, Type: model.WarningCherryBlossom, Severity: model.SeverityInfo, Title: "Cherry blossom season", Message: "Your dates fall in peak cherry blossom season. Stunning, but hotels in famous hanami spots book out months ahead."},
	{Window: CalendarWindow{StartMonth: 11, StartDay: 1, EndMonth: 11, EndDay: 30}, Type: model.WarningAutumn, Severity: model.SeverityInfo, Title: "Autumn foliage season", Message: "November is peak koyo season. Kyoto and Nikko get very busy on weekends."},
	{Window: CalendarWindow{StartMonth: 8, StartDay: 1, EndMonth: 8, EndDay: 31}, Type: model.WarningWeather, Severity: model.SeverityCaution, Title: "Summer heat", Message: "August is hot and humid across most of Japan. Plan outdoor sights for mornings and stay hydrated."},
	{Window: CalendarWindow{StartMonth: 1, StartDay: 1, EndMonth: 1, EndDay: 31}, Type: model.WarningWeather, Severity: model.SeverityInfo, Title: "Winter cold", Message: "January is the coldest month; expect snow in Hokkaido, Tohoku and the Japan Alps."},
}

// HolidayWindows returns the holiday calendar. Read-only.
func HolidayWindows() []HolidayWindow {
	return holidayWindows
}

// SeasonalWindows returns the seasonal calendar. Read-only.
func SeasonalWindows() []SeasonalWindow {
	return seasonalWindows
}
