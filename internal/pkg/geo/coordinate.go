// Package geo holds the coordinate math behind the nearby dentist search:
// coordinate validation, the bounding-box pre-filter, great-circle distance
// and distance ranking.
package geo

import (
	"fmt"
	"math"
)

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks that the coordinate is finite and inside the WGS84 ranges
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Latitude)
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Longitude)
	}
	return nil
}

// IsValid reports whether Validate passes
func (c Coordinate) IsValid() bool {
	return c.Validate() == nil
}

// FromNullable builds a coordinate from nullable columns. ok is false when
// either component is missing or the pair is outside the valid ranges.
func FromNullable(lat, lon *float64) (Coordinate, bool) {
	if lat == nil || lon == nil {
		return Coordinate{}, false
	}
	c := Coordinate{Latitude: *lat, Longitude: *lon}
	return c, c.IsValid()
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
