package domain

import "math"

// Immutable geographic coordinate (latitude, longitude, WGS 84).
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether the coordinate is finite and within WGS 84 bounds.
// Invalid coordinates are degraded by the matching engine, never scored.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return false
	}
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
