// README: Location resolver; autocomplete, forward and reverse geocoding.
package location

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"farecast/internal/maps"
	"farecast/internal/types"
)

var ErrBadQuery = errors.New("query too short")

const (
	maxSuggestions = 5
	maxCandidates  = 5
	// addressComponents is how many comma-separated parts of a full geocoded
	// address survive truncation. Full addresses are too long for list rows.
	addressComponents = 3
)

// Geocoder is the external geocoding dependency. *maps.GeocodeService is the
// production implementation; tests inject a fake.
type Geocoder interface {
	Reverse(ctx context.Context, p types.Point) (string, error)
	Search(ctx context.Context, query string, limit int) ([]maps.Candidate, error)
}

type Service struct {
	geocoder Geocoder
	places   []types.Location
}

// NewService builds a resolver. geocoder may be nil, in which case reverse
// lookups fall back to coordinate formatting and Search returns an error.
func NewService(geocoder Geocoder) *Service {
	return &Service{geocoder: geocoder, places: knownPlaces}
}

// Suggest returns up to 5 known places matching the partial query, prefix
// matches ranked before substring matches. Matching is case-insensitive.
func (s *Service) Suggest(query string) []types.Location {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 2 {
		return nil
	}

	var prefix, substr []types.Location
	for _, p := range s.places {
		addr := strings.ToLower(p.Address)
		switch {
		case strings.HasPrefix(addr, q):
			prefix = append(prefix, p)
		case strings.Contains(addr, q):
			substr = append(substr, p)
		}
	}

	out := append(prefix, substr...)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// Reverse resolves coordinates to a short human-readable address. Any
// geocoder failure degrades to plain coordinate formatting; map taps must
// always produce something usable as a pickup label.
func (s *Service) Reverse(ctx context.Context, p types.Point) types.Location {
	loc := types.Location{
		Address: fmt.Sprintf("%.5f, %.5f", p.Lat, p.Lng),
		Lat:     p.Lat,
		Lng:     p.Lng,
	}
	if s.geocoder == nil {
		return loc
	}

	full, err := s.geocoder.Reverse(ctx, p)
	if err != nil || full == "" {
		return loc
	}
	loc.Address = shortAddress(full)
	loc.VerifiedAddress = full
	return loc
}

// Search forward-geocodes a free-text query into up to 5 candidates.
func (s *Service) Search(ctx context.Context, query string) ([]types.Location, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return nil, ErrBadQuery
	}
	if s.geocoder == nil {
		return nil, errors.New("geocoding is not configured")
	}

	candidates, err := s.geocoder.Search(ctx, query, maxCandidates)
	if err != nil {
		return nil, fmt.Errorf("forward geocode %q: %w", query, err)
	}

	out := make([]types.Location, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, types.Location{
			Address:         shortAddress(c.Address),
			Lat:             c.Point.Lat,
			Lng:             c.Point.Lng,
			VerifiedAddress: c.Address,
		})
	}
	return out, nil
}

// shortAddress keeps the first few comma-separated components of a full
// geocoded address.
func shortAddress(full string) string {
	parts := strings.Split(full, ",")
	if len(parts) > addressComponents {
		parts = parts[:addressComponents]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
