package estimate

import (
	"math"
	"testing"

	"farecast/internal/types"
)

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: 6.5244, Lng: 3.3792},
			b:         types.Point{Lat: 6.5244, Lng: 3.3792},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "Ikeja to Victoria Island (~21km)",
			a:         types.Point{Lat: 6.6018, Lng: 3.3515},
			b:         types.Point{Lat: 6.4281, Lng: 3.4219},
			wantKm:    20.8,
			tolerance: 1.5,
		},
		{
			name:      "Lagos to Abuja (~524km)",
			a:         types.Point{Lat: 6.5244, Lng: 3.3792},
			b:         types.Point{Lat: 9.0765, Lng: 7.3986},
			wantKm:    524,
			tolerance: 15,
		},
		{
			name:      "New York to Los Angeles (~3944km)",
			a:         types.Point{Lat: 40.7128, Lng: -74.0060},
			b:         types.Point{Lat: 34.0522, Lng: -118.2437},
			wantKm:    3944,
			tolerance: 50,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DistanceKm(tc.a, tc.b)
			if math.Abs(got-tc.wantKm) > tc.tolerance {
				t.Errorf("DistanceKm() = %.2f, want %.2f ± %.2f", got, tc.wantKm, tc.tolerance)
			}
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := types.Point{Lat: 6.5244, Lng: 3.3792}
	b := types.Point{Lat: 6.6018, Lng: 3.3515}

	ab := DistanceKm(a, b)
	ba := DistanceKm(b, a)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: a→b=%.9f b→a=%.9f", ab, ba)
	}
	if ab <= 0 {
		t.Errorf("distance between distinct points must be positive, got %.9f", ab)
	}
}

func TestSortByFare(t *testing.T) {
	items := []PriceEstimate{
		{ServiceID: "c", Price: 3000},
		{ServiceID: "a", Price: 1000},
		{ServiceID: "b", Price: 2000},
	}
	sortByFare(items, func(p PriceEstimate) float64 { return p.Price })

	want := []types.ID{"a", "b", "c"}
	for i, id := range want {
		if items[i].ServiceID != id {
			t.Fatalf("position %d: got %s, want %s", i, items[i].ServiceID, id)
		}
	}
}
