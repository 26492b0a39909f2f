package geo

import "math"

// EarthRadiusMiles is the great-circle Earth radius used for every distance
// in this service. The map talks in miles, so the radius does too.
const EarthRadiusMiles = 3959.0

// SearchRadiusMiles is the fixed search boundary. A pin at exactly this
// distance is in range (inclusive comparison).
const SearchRadiusMiles = 50.0

// SearchZoom is the viewport zoom applied when a search recenters the map.
const SearchZoom = 9

// Haversine returns the great-circle distance in miles between two
// points given in decimal degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * EarthRadiusMiles * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// InRange reports whether a distance falls inside the search boundary.
func InRange(miles float64) bool {
	return miles <= SearchRadiusMiles
}
