package matching

import (
	"math"

	"donation-match-service/internal/domain"
)

// Mean Earth radius in kilometers, per the haversine convention.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinates using
// the haversine formula. The second return value is false when either
// coordinate is non-finite or out of range; callers degrade such records
// rather than failing the whole ranking pass.
//
// The function is symmetric and returns 0 for identical coordinates.
func DistanceKm(a, b domain.Coordinate) (float64, bool) {
	if !a.Valid() || !b.Valid() {
		return 0, false
	}

	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h))), true
}

// TravelTimeMinutes estimates pickup travel time from a straight-line distance
// assuming a fixed average speed. Monotonically increasing in distance and 0
// for distance 0. True routing-graph travel time is intentionally out of scope.
func TravelTimeMinutes(distanceKm, speedKmh float64) float64 {
	if distanceKm <= 0 || speedKmh <= 0 {
		return 0
	}
	return distanceKm / speedKmh * 60
}
