package models

import "math"

type CoordinatePoint struct {
	Lat float64
	Lon float64
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle (haversine) distance to other in
// kilometers.
func (p CoordinatePoint) DistanceKm(other CoordinatePoint) float64 {
	latA := p.Lat * math.Pi / 180
	latB := other.Lat * math.Pi / 180
	dLat := (other.Lat - p.Lat) * math.Pi / 180
	dLon := (other.Lon - p.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func ComparePoints(a, b CoordinatePoint) int {
	if a.Lat < b.Lat {
		return -1
	}
	if a.Lat > b.Lat {
		return 1
	}
	if a.Lon < b.Lon {
		return -1
	}
	if a.Lon > b.Lon {
		return 1
	}
	return 0
}
