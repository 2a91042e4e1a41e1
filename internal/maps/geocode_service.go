package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"farecast/internal/types"
)

// Candidate is a simplified geocoding result.
type Candidate struct {
	Address string
	Point   types.Point
}

// GeocodeService handles interactions with the Google Geocoding API. Results
// are biased to one country so a bare street name resolves locally.
type GeocodeService struct {
	client  *maps.Client
	country string
}

// NewGeocodeService creates a new GeocodeService with the given API key and
// ISO country code (e.g. "NG").
func NewGeocodeService(apiKey, country string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client, country: country}, nil
}

// Reverse resolves coordinates to the formatted address of the closest match.
func (s *GeocodeService) Reverse(ctx context.Context, p types.Point) (string, error) {
	results, err := s.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: p.Lat, Lng: p.Lng},
	})
	if err != nil {
		return "", fmt.Errorf("maps api error: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no address found for %.5f, %.5f", p.Lat, p.Lng)
	}
	return results[0].FormattedAddress, nil
}

// Search resolves a free-text query to up to limit candidates inside the
// configured country.
func (s *GeocodeService) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: query,
		Components: map[maps.Component]string{
			maps.ComponentCountry: s.country,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}

	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]Candidate, 0, len(results))
	for _, r := range results {
		out = append(out, Candidate{
			Address: r.FormattedAddress,
			Point:   types.Point{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		})
	}
	return out, nil
}
