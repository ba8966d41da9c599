package planner

import (
	"math"
	"sort"

	"github.com/samber/lo"

	"tabiplan/internal/model"
	"tabiplan/internal/refdata"
)

// Neutral score used when an input needed for a component score is absent
const neutralScore = 50

// maxProximityKm is the distance ceiling for proximity normalization,
// roughly the length of the Japanese archipelago
const maxProximityKm = 2000.0

// Number of top-scored regions flagged as recommended
const recommendedCount = 3

// Recommender scores and ranks regions and cities against traveler vibes
// and entry-point proximity
type Recommender struct {
	weightMatch     float64
	weightProximity float64
}

// NewRecommender creates a recommender with the given component weights
func NewRecommender(weightMatch, weightProximity float64) *Recommender {
	return &Recommender{
		weightMatch:     weightMatch,
		weightProximity: weightProximity,
	}
}

// ScoreRegions scores every catalog region against the traveler's vibes and
// entry point and returns them in descending total-score order, ties broken
// by catalog order. The entry point's region, if known, is moved to the
// front as a single relocation (not a re-sort). The first three entries are
// flagged as recommended. Absent inputs degrade to neutral scores; the
// function never fails.
func (r *Recommender) ScoreRegions(vibes []string, entry *model.EntryPoint) []model.RegionScore {
	regions := refdata.Regions()
	entryRegion := EntryRegionID(entry)

	scores := make([]model.RegionScore, 0, len(regions))
	for _, region := range regions {
		match := matchScore(region, vibes)
		proximity := r.proximityScore(region, entry)
		total := int(math.Round(float64(match)*r.weightMatch + float64(proximity)*r.weightProximity))

		scores = append(scores, model.RegionScore{
			Region:             region.ID,
			MatchScore:         match,
			ProximityScore:     proximity,
			TotalScore:         total,
			IsEntryPointRegion: region.ID == entryRegion,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalScore > scores[j].TotalScore
	})

	// Single relocation: pull the entry-point region to the front without
	// disturbing the relative order of the rest
	for i, s := range scores {
		if s.IsEntryPointRegion && i > 0 {
			relocated := scores[i]
			copy(scores[1:i+1], scores[:i])
			scores[0] = relocated
			break
		}
	}

	for i := range scores {
		scores[i].IsRecommended = i < recommendedCount
	}

	return scores
}

// AutoSelectRegions returns the top region ids for a trip of the given
// duration: one region up to 5 days, two up to 9, three beyond. An unset
// duration behaves like a short trip.
func (r *Recommender) AutoSelectRegions(vibes []string, entry *model.EntryPoint, durationDays int) []string {
	k := 1
	switch {
	case durationDays > 9:
		k = 3
	case durationDays > 5:
		k = 2
	}

	scores := r.ScoreRegions(vibes, entry)
	if k > len(scores) {
		k = len(scores)
	}
	return lo.Map(scores[:k], func(s model.RegionScore, _ int) string { return s.Region })
}

// AutoSelectCities picks exactly two distinct regions — the entry-point
// region when known, plus the next-highest-scoring other region — and
// returns every city belonging to either, in catalog order. With a
// single-region catalog it returns just that region's cities.
func (r *Recommender) AutoSelectCities(vibes []string, entry *model.EntryPoint) []string {
	scores := r.ScoreRegions(vibes, entry)
	if len(scores) == 0 {
		return nil
	}

	chosen := map[string]bool{scores[0].Region: true}
	for _, s := range scores[1:] {
		if !chosen[s.Region] {
			chosen[s.Region] = true
			break
		}
	}

	var cityIDs []string
	for _, c := range refdata.Cities() {
		if chosen[c.RegionID] {
			cityIDs = append(cityIDs, c.ID)
		}
	}
	return cityIDs
}

// EntryRegionID resolves the entry point to a region id: the explicit
// regionId when set, otherwise the region with the nearest centroid.
// Returns "" for a nil entry point.
func EntryRegionID(entry *model.EntryPoint) string {
	if entry == nil {
		return ""
	}
	if entry.RegionID != "" {
		return entry.RegionID
	}

	best := ""
	bestDist := math.MaxFloat64
	for _, region := range refdata.Regions() {
		if d := HaversineKm(entry.Coordinates, region.Centroid); d < bestDist {
			best = region.ID
			bestDist = d
		}
	}
	return best
}

// matchScore rates vibe overlap on a 0-100 scale: each matched vibe is
// worth a share of 90 points, with a 10-point bonus when more than one vibe
// matches. No vibes selected scores neutral.
func matchScore(region refdata.Region, vibes []string) int {
	if len(vibes) == 0 {
		return neutralScore
	}

	matches := len(lo.Intersect(vibes, region.BestFor))
	bonus := 0.0
	if matches > 1 {
		bonus = 10
	}

	raw := float64(matches)/float64(len(vibes))*90 + bonus
	return int(math.Round(math.Min(100, raw)))
}

// proximityScore rates entry-point distance to the region centroid,
// normalized against the archipelago-length ceiling and inverted so nearer
// is higher. No entry point scores neutral.
func (r *Recommender) proximityScore(region refdata.Region, entry *model.EntryPoint) int {
	if entry == nil {
		return neutralScore
	}

	dist := HaversineKm(entry.Coordinates, region.Centroid)
	norm := math.Min(dist/maxProximityKm, 1)
	return int(math.Round((1 - norm) * 100))
}
