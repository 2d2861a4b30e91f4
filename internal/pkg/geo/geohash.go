package geo

import (
	"github.com/mmcloughlin/geohash"
)

// DefaultGeohashPrecision is roughly a 150m x 150m cell
const DefaultGeohashPrecision uint = 7

// Geohash encodes a coordinate with the given precision
func Geohash(c Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash returns the center of a geohash cell
func DecodeGeohash(hash string) Coordinate {
	lat, lon := geohash.Decode(hash)
	return Coordinate{Latitude: lat, Longitude: lon}
}

// ValidGeohash reports whether s is a well formed geohash
func ValidGeohash(s string) bool {
	return s != "" && geohash.Validate(s) == nil
}
