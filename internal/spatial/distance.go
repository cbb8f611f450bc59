package spatial

import "github.com/golang/geo/s2"

// EarthRadiusMeters is the mean Earth radius used for distance calculations
const EarthRadiusMeters = 6371000.0

// DistanceKm calculates the great-circle distance between two points in
// kilometers using S2 geometry
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters / 1000
}
