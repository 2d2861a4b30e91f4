package geo

import "math"

const (
	// KmPerDegreeLat is the length of one degree of latitude
	KmPerDegreeLat = 110.574
	// KmPerDegreeLonEquator is the length of one degree of longitude at the equator
	KmPerDegreeLonEquator = 111.320

	minCosLat = 1e-9
)

// BoundingBox is a latitude/longitude rectangle used as a cheap pre-filter.
// When MinLon > MaxLon the window crosses the antimeridian and covers
// [MinLon, 180] and [-180, MaxLon].
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// NewBoundingBox returns the rectangle that contains every point within
// radiusKm of center. It always yields finite bounds: near the poles, or
// when the circle would span the whole globe, the longitude window becomes
// [-180, 180].
func NewBoundingBox(center Coordinate, radiusKm float64) BoundingBox {
	if radiusKm < 0 || math.IsNaN(radiusKm) {
		radiusKm = 0
	}

	latDelta := radiusKm / KmPerDegreeLat
	box := BoundingBox{
		MinLat: math.Max(center.Latitude-latDelta, -90),
		MaxLat: math.Min(center.Latitude+latDelta, 90),
		MinLon: -180,
		MaxLon: 180,
	}

	// A circle that reaches a pole contains points at every longitude.
	if box.MaxLat >= 90 || box.MinLat <= -90 {
		return box
	}

	cosLat := math.Cos(toRadians(center.Latitude))
	if cosLat <= minCosLat {
		return box
	}

	lonDelta := radiusKm / (KmPerDegreeLonEquator * cosLat)
	if math.IsNaN(lonDelta) || math.IsInf(lonDelta, 0) || lonDelta >= 180 {
		return box
	}

	minLon := center.Longitude - lonDelta
	maxLon := center.Longitude + lonDelta
	if minLon < -180 {
		minLon += 360
	}
	if maxLon > 180 {
		maxLon -= 360
	}
	box.MinLon = minLon
	box.MaxLon = maxLon
	return box
}

// CrossesAntimeridian reports whether the longitude window wraps around ±180
func (b BoundingBox) CrossesAntimeridian() bool {
	return b.MinLon > b.MaxLon
}

// Contains reports whether c lies inside the box, honoring antimeridian wrap
func (b BoundingBox) Contains(c Coordinate) bool {
	if c.Latitude < b.MinLat || c.Latitude > b.MaxLat {
		return false
	}
	if b.CrossesAntimeridian() {
		return c.Longitude >= b.MinLon || c.Longitude <= b.MaxLon
	}
	return c.Longitude >= b.MinLon && c.Longitude <= b.MaxLon
}
