// Package refdata holds the static reference tables the planning engine
// consumes: the region/city/location catalogs, the inter-city fare matrix,
// the rail-pass tiers and the holiday/seasonal calendar windows. All tables
// are in-source Go literals, read-only after process start; they change only
// with new builds.
package refdata

import "tabiplan/internal/model"

// Region is one of Japan's administrative regions with the vibe affinities
// used by the recommender
type Region struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Centroid model.Coordinates  `json:"centroid"`
	BestFor  []string           `json:"bestFor"`
}

// City is a plannable destination within a region
type City struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	RegionID    string            `json:"regionId"`
	Coordinates model.Coordinates `json:"coordinates"`
}

// Location is a visitable place within a city, used to seed and refine
// itinerary days
type Location struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	CityID      string            `json:"cityId"`
	Category    string            `json:"category"` // food|culture|nature|shopping|entertainment|rest
	Coordinates model.Coordinates `json:"coordinates"`
	KidFriendly bool              `json:"kidFriendly"`
	MealType    string            `json:"mealType,omitempty"`
}

// Location categories
const (
	CategoryFood          = "food"
	CategoryCulture       = "culture"
	CategoryNature        = "nature"
	CategoryShopping      = "shopping"
	CategoryEntertainment = "entertainment"
	CategoryRest          = "rest"
)

// regions is the region catalog. Order matters: the recommender breaks
// score ties by catalog order.
var regions = []Region{
	{ID: "hokkaido", Name: "Hokkaido", Centroid: model.Coordinates{Lat: 43.0618, Lng: 141.3545}, BestFor: []string{"nature", "winter_sports", "food"}},
	{ID: "tohoku", Name: "Tohoku", Centroid: model.Coordinates{Lat: 38.2682, Lng: 140.8694}, BestFor: []string{"nature", "culture", "relaxation"}},
	{ID: "kanto", Name: "Kanto", Centroid: model.Coordinates{Lat: 35.6762, Lng: 139.6503}, BestFor: []string{"city", "pop_culture", "food", "entertainment", "shopping"}},
	{ID: "chubu", Name: "Chubu", Centroid: model.Coordinates{Lat: 36.2048, Lng: 137.9636}, BestFor: []string{"nature", "culture", "winter_sports"}},
	{ID: "kansai", Name: "Kansai", Centroid: model.Coordinates{Lat: 34.6937, Lng: 135.5023}, BestFor: []string{"culture", "food", "city", "shopping"}},
	{ID: "chugoku", Name: "Chugoku", Centroid: model.Coordinates{Lat: 34.3966, Lng: 132.4596}, BestFor: []string{"culture", "nature"}},
	{ID: "shikoku", Name: "Shikoku", Centroid: model.Coordinates{Lat: 33.8416, Lng: 133.5336}, BestFor: []string{"nature", "relaxation", "culture"}},
	{ID: "kyushu", Name: "Kyushu", Centroid: model.Coordinates{Lat: 33.5904, Lng: 130.4017}, BestFor: []string{"food", "nature", "relaxation"}},
	{ID: "okinawa", Name: "Okinawa", Centroid: model.Coordinates{Lat: 26.2124, Lng: 127.6809}, BestFor: []string{"beach", "nature", "relaxation"}},
}

// cities is the city catalog, grouped by region in catalog order
var cities = []City{
	{ID: "sapporo", Name: "Sapporo", RegionID: "hokkaido", Coordinates: model.Coordinates{Lat: 43.0618, Lng: 141.3545}},
	{ID: "hakodate", Name: "Hakodate", RegionID: "hokkaido", Coordinates: model.Coordinates{Lat: 41.7687, Lng: 140.7291}},
	{ID: "otaru", Name: "Otaru", RegionID: "hokkaido", Coordinates: model.Coordinates{Lat: 43.1907, Lng: 140.9947}},
	{ID: "sendai", Name: "Sendai", RegionID: "tohoku", Coordinates: model.Coordinates{Lat: 38.2682, Lng: 140.8694}},
	{ID: "aomori", Name: "Aomori", RegionID: "tohoku", Coordinates: model.Coordinates{Lat: 40.8244, Lng: 140.7400}},
	{ID: "tokyo", Name: "Tokyo", RegionID: "kanto", Coordinates: model.Coordinates{Lat: 35.6762, Lng: 139.6503}},
	{ID: "yokohama", Name: "Yokohama", RegionID: "kanto", Coordinates: model.Coordinates{Lat: 35.4437, Lng: 139.6380}},
	{ID: "kamakura", Name: "Kamakura", RegionID: "kanto", Coordinates: model.Coordinates{Lat: 35.3192, Lng: 139.5467}},
	{ID: "nikko", Name: "Nikko", RegionID: "kanto", Coordinates: model.Coordinates{Lat: 36.7199, Lng: 139.6982}},
	{ID: "nagoya", Name: "Nagoya", RegionID: "chubu", Coordinates: model.Coordinates{Lat: 35.1815, Lng: 136.9066}},
	{ID: "kanazawa", Name: "Kanazawa", RegionID: "chubu", Coordinates: model.Coordinates{Lat: 36.5613, Lng: 136.6562}},
	{ID: "takayama", Name: "Takayama", RegionID: "chubu", Coordinates: model.Coordinates{Lat: 36.1408, Lng: 137.2522}},
	{ID: "matsumoto", Name: "Matsumoto", RegionID: "chubu", Coordinates: model.Coordinates{Lat: 36.2380, Lng: 137.9720}},
	{ID: "osaka", Name: "Osaka", RegionID: "kansai", Coordinates: model.Coordinates{Lat: 34.6937, Lng: 135.5023}},
	{ID: "kyoto", Name: "Kyoto", RegionID: "kansai", Coordinates: model.Coordinates{Lat: 35.0116, Lng: 135.7681}},
	{ID: "nara", Name: "Nara", RegionID: "kansai", Coordinates: model.Coordinates{Lat: 34.6851, Lng: 135.8048}},
	{ID: "kobe", Name: "Kobe", RegionID: "kansai", Coordinates: model.Coordinates{Lat: 34.6901, Lng: 135.1956}},
	{ID: "hiroshima", Name: "Hiroshima", RegionID: "chugoku", Coordinates: model.Coordinates{Lat: 34.3853, Lng: 132.4553}},
	{ID: "okayama", Name: "Okayama", RegionID: "chugoku", Coordinates: model.Coordinates{Lat: 34.6551, Lng: 133.9195}},
	{ID: "matsuyama", Name: "Matsuyama", RegionID: "shikoku", Coordinates: model.Coordinates{Lat: 33.8392, Lng: 132.7657}},
	{ID: "takamatsu", Name: "Takamatsu", RegionID: "shikoku", Coordinates: model.Coordinates{Lat: 34.3428, Lng: 134.0466}},
	{ID: "fukuoka", Name: "Fukuoka", RegionID: "kyushu", Coordinates: model.Coordinates{Lat: 33.5904, Lng: 130.4017}},
	{ID: "nagasaki", Name: "Nagasaki", RegionID: "kyushu", Coordinates: model.Coordinates{Lat: 32.7503, Lng: 129.8779}},
	{ID: "kumamoto", Name: "Kumamoto", RegionID: "kyushu", Coordinates: model.Coordinates{Lat: 32.8032, Lng: 130.7079}},
	{ID: "kagoshima", Name: "Kagoshima", RegionID: "kyushu", Coordinates: model.Coordinates{Lat: 31.5966, Lng: 130.5571}},
	{ID: "naha", Name: "Naha", RegionID: "okinawa", Coordinates: model.Coordinates{Lat: 26.2124, Lng: 127.6809}},
	{ID: "ishigaki", Name: "Ishigaki", RegionID: "okinawa", Coordinates: model.Coordinates{Lat: 24.3448, Lng: 124.1572}},
}

// farRegionPairs are region combinations flagged as excessive intra-country
// travel regardless of the computed centroid distance
var farRegionPairs = map[[2]string]bool{
	{"hokkaido", "okinawa"}: true,
	{"hokkaido", "kyushu"}:  true,
	{"hokkaido", "shikoku"}: true,
	{"hokkaido", "chugoku"}: true,
	{"okinawa", "kanto"}:    true,
	{"okinawa", "tohoku"}:   true,
	{"okinawa", "chubu"}:    true,
	{"okinawa", "kansai"}:   true,
	{"okinawa", "chugoku"}:  true,
	{"okinawa", "shikoku"}:  true,
}

// Regions returns the region catalog in catalog order. The returned slice
// is shared and must not be modified.
func Regions() []Region {
	return regions
}

// RegionByID looks up a region by id
func RegionByID(id string) (Region, bool) {
	for _, r := range regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Cities returns the full city catalog in catalog order
func Cities() []City {
	return cities
}

// CityByID looks up a city by id
func CityByID(id string) (City, bool) {
	for _, c := range cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

// CitiesByRegion returns the cities of one region in catalog order
func CitiesByRegion(regionID string) []City {
	var out []City
	for _, c := range cities {
		if c.RegionID == regionID {
			out = append(out, c)
		}
	}
	return out
}

// IsFarRegionPair reports whether two regions are a known far combination.
// The check is symmetric.
func IsFarRegionPair(a, b string) bool {
	return farRegionPairs[[2]string{a, b}] || farRegionPairs[[2]string{b, a}]
}
