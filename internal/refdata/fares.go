package refdata

import "tabiplan/internal/model"

// fares is the one-way ordinary reserved-seat fare matrix in JPY. Each pair
// is stored once; Fare handles the reverse direction.
var fares = map[[2]string]int{
	{"tokyo", "osaka"}:         13870,
	{"tokyo", "kyoto"}:         13320,
	{"tokyo", "nagoya"}:        11300,
	{"tokyo", "kanazawa"}:      14180,
	{"tokyo", "sendai"}:        11410,
	{"tokyo", "hiroshima"}:     18380,
	{"tokyo", "fukuoka"}:       22950,
	{"tokyo", "sapporo"}:       27760,
	{"tokyo", "yokohama"}:      480,
	{"tokyo", "kamakura"}:      950,
	{"tokyo", "nikko"}:         2860,
	{"osaka", "kyoto"}:         580,
	{"osaka", "kobe"}:          420,
	{"osaka", "nara"}:          810,
	{"osaka", "okayama"}:       6460,
	{"osaka", "hiroshima"}:     10420,
	{"osaka", "fukuoka"}:       15600,
	{"kyoto", "nara"}:          720,
	{"kyoto", "kanazawa"}:      6820,
	{"nagoya", "kyoto"}:        5910,
	{"nagoya", "osaka"}:        6680,
	{"nagoya", "takayama"}:     6140,
	{"nagoya", "matsumoto"}:    6620,
	{"okayama", "hiroshima"}:   5610,
	{"okayama", "takamatsu"}:   2520,
	{"hiroshima", "fukuoka"}:   9150,
	{"fukuoka", "nagasaki"}:    4270,
	{"fukuoka", "kumamoto"}:    4700,
	{"kumamoto", "kagoshima"}:  6540,
	{"sendai", "aomori"}:       6790,
	{"sapporo", "hakodate"}:    8910,
	{"sapporo", "otaru"}:       750,
	{"matsuyama", "takamatsu"}: 6080,
}

// railPasses lists the purchasable pass tiers, cheapest first
var railPasses = []model.RailPass{
	{ID: "jr-7", Name: "7-Day JR Pass", DurationDays: 7, Price: 50000},
	{ID: "jr-14", Name: "14-Day JR Pass", DurationDays: 14, Price: 80000},
	{ID: "jr-21", Name: "21-Day JR Pass", DurationDays: 21, Price: 100000},
}

// Fare returns the point-to-point fare between two cities. Lookup is
// symmetric: (from,to) first, then (to,from). Unknown pairs return ok=false
// and must be skipped by the caller, not treated as zero.
func Fare(from, to string) (int, bool) {
	if v, ok := fares[[2]string{from, to}]; ok {
		return v, true
	}
	if v, ok := fares[[2]string{to, from}]; ok {
		return v, true
	}
	return 0, false
}

// RailPasses returns the pass tiers ordered cheapest first. The returned
// slice is shared and must not be modified.
func RailPasses() []model.RailPass {
	return railPasses
}
