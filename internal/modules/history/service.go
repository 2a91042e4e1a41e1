// README: Search history service; newest-first with a hard entry cap.
package history

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"farecast/internal/types"
)

// Store is the persistence contract for recorded searches. Implementations
// return newest-first slices; the service still re-sorts defensively.
type Store interface {
	Insert(ctx context.Context, s *RouteSearch) error
	TrimToNewest(ctx context.Context, n int) error
	ListRecent(ctx context.Context, limit int) ([]RouteSearch, error)
	ListByRoute(ctx context.Context, pickupAddr, destAddr string, limit int) ([]RouteSearch, error)
	DeleteAll(ctx context.Context) error
}

type Service struct {
	store Store
	cap   int
}

// NewService caps stored history at max entries; writes beyond the cap evict
// the oldest searches.
func NewService(store Store, max int) *Service {
	if max <= 0 {
		max = 50
	}
	return &Service{store: store, cap: max}
}

// RecordSearch persists a completed search and enforces the history cap.
// The search's ID and timestamp are assigned here.
func (s *Service) RecordSearch(ctx context.Context, search RouteSearch) (types.ID, error) {
	search.ID = types.ID(uuid.NewString())
	search.SearchedAt = time.Now().UTC()
	if err := s.store.Insert(ctx, &search); err != nil {
		return "", err
	}
	if err := s.store.TrimToNewest(ctx, s.cap); err != nil {
		return "", err
	}
	return search.ID, nil
}

// Recent returns the stored searches, most recent first, at most the cap.
func (s *Service) Recent(ctx context.Context) ([]RouteSearch, error) {
	out, err := s.store.ListRecent(ctx, s.cap)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out)
	return out, nil
}

// ForRoute returns past searches for one exact address pair, newest first.
func (s *Service) ForRoute(ctx context.Context, pickupAddr, destAddr string) ([]RouteSearch, error) {
	out, err := s.store.ListByRoute(ctx, pickupAddr, destAddr, s.cap)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out)
	return out, nil
}

// Clear drops the whole history.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.DeleteAll(ctx)
}

// Writes already land newest-first, but reads re-sort anyway: entries written
// by an older build carried client-supplied timestamps.
func sortNewestFirst(items []RouteSearch) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SearchedAt.After(items[j].SearchedAt)
	})
}
