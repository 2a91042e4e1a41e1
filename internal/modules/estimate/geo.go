// Package estimate — geo.go contains pure geographic computation helpers.
package estimate

import (
	"math"

	"farecast/internal/types"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle (haversine) distance in kilometres
// between two points. This tracks straight-line distance and is known to
// understate road distance in dense urban grids.
func DistanceKm(a, b types.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// sortByFare performs an insertion sort (fine for small N) on any slice
// where each element exposes a fare via the accessor function.
func sortByFare[T any](items []T, fare func(T) float64) {
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && fare(items[j]) > fare(key) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}
