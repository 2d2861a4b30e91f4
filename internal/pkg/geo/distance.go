package geo

import (
	"math"
	"sort"
)

// EarthRadiusKm is the mean Earth radius used by HaversineKm
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between a and b in kilometers
func HaversineKm(a, b Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// rounding can push h a hair above 1 for antipodal points
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Locatable is anything that may carry a coordinate
type Locatable interface {
	Location() (Coordinate, bool)
}

// Ranked pairs an item with its distance from the search center
type Ranked[T any] struct {
	Item       T
	DistanceKm float64
}

// RankByDistance keeps the items strictly closer than radiusKm to center,
// orders them by ascending distance (ties keep their input order) and
// truncates to limit. Items without a usable coordinate are skipped.
// limit <= 0 means no truncation. The result is never nil.
func RankByDistance[T Locatable](items []T, center Coordinate, radiusKm float64, limit int) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(items))
	for _, item := range items {
		loc, ok := item.Location()
		if !ok {
			continue
		}
		d := HaversineKm(center, loc)
		if math.IsNaN(d) || d >= radiusKm {
			continue
		}
		ranked = append(ranked, Ranked[T]{Item: item, DistanceKm: d})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
