// README: Fare report service; submission validation and accuracy rollups.
package reports

import (
	"context"
	"errors"
	"time"

	"farecast/internal/modules/estimate"
	"farecast/internal/types"
)

var ErrBadRequest = errors.New("invalid fare report")

type Store interface {
	Insert(ctx context.Context, r *FareReport) error
	ListByService(ctx context.Context, serviceID types.ID, limit int) ([]FareReport, error)
	CountByService(ctx context.Context) (map[types.ID]int, error)
	AccuracyByService(ctx context.Context) ([]ServiceAccuracy, error)
}

type Service struct {
	store    Store
	services map[types.ID]bool
}

// NewService accepts reports only for services in the given catalog.
func NewService(store Store, catalog []estimate.Rate) *Service {
	services := make(map[types.ID]bool, len(catalog))
	for _, r := range catalog {
		services[r.ServiceID] = true
	}
	return &Service{store: store, services: services}
}

// Submit validates and stores a report. A zero DistanceKm is filled in from
// the coordinates.
func (s *Service) Submit(ctx context.Context, r FareReport) (FareReport, error) {
	if !s.services[r.ServiceID] {
		return FareReport{}, ErrBadRequest
	}
	if r.ActualFare <= 0 || r.EstimatedFare < 0 {
		return FareReport{}, ErrBadRequest
	}
	if r.Pickup == r.Destination {
		return FareReport{}, ErrBadRequest
	}
	if r.DistanceKm == 0 {
		r.DistanceKm = estimate.DistanceKm(r.Pickup, r.Destination)
	}
	r.ReportedAt = time.Now().UTC()
	if err := s.store.Insert(ctx, &r); err != nil {
		return FareReport{}, err
	}
	return r, nil
}

func (s *Service) ForService(ctx context.Context, serviceID types.ID, limit int) ([]FareReport, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.store.ListByService(ctx, serviceID, limit)
}

// CountByService satisfies the estimation engine's ReportCounter.
func (s *Service) CountByService(ctx context.Context) (map[types.ID]int, error) {
	return s.store.CountByService(ctx)
}

// Accuracy returns the per-service accuracy rollup.
func (s *Service) Accuracy(ctx context.Context) ([]ServiceAccuracy, error) {
	return s.store.AccuracyByService(ctx)
}
