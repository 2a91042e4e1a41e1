// README: Common value objects shared across modules.
package types

// ID is an opaque entity identifier.
type ID string

// Point is a WGS84 coordinate pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether the point carries no coordinates.
func (p Point) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}

// Location is a point of interest with its display address. Several lookups
// (favorites, route cache keys) compare locations by Address string alone,
// mirroring how users pick them; two distinct coordinate pairs sharing one
// formatted address are therefore treated as the same place.
type Location struct {
	Address         string  `json:"address"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	VerifiedAddress string  `json:"verified_address,omitempty"`
}

// Point returns the coordinate part of the location.
func (l Location) Point() Point {
	return Point{Lat: l.Lat, Lng: l.Lng}
}
