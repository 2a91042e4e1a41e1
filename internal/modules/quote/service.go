// README: Quote service; validates trips, runs the engine, falls back to cache, records history.
package quote

import (
	"context"
	"errors"
	"log"
	"time"

	"farecast/internal/modules/estimate"
	"farecast/internal/modules/history"
	"farecast/internal/modules/routecache"
	"farecast/internal/types"
)

var (
	ErrMissingEndpoint    = errors.New("pickup and destination are required")
	ErrIdenticalEndpoints = errors.New("pickup and destination are the same place")
)

type Engine interface {
	Quote(ctx context.Context, pickup, dropoff types.Point) ([]estimate.PriceEstimate, error)
}

type Cache interface {
	Get(ctx context.Context, pickupAddr, destAddr string) (routecache.Entry, bool, error)
	Put(ctx context.Context, e routecache.Entry) error
}

type History interface {
	RecordSearch(ctx context.Context, s history.RouteSearch) (types.ID, error)
}

type Service struct {
	engine  Engine
	cache   Cache
	history History
}

func NewService(engine Engine, cache Cache, hist History) *Service {
	return &Service{engine: engine, cache: cache, history: hist}
}

// Compare produces a fare comparison for the trip. Fresh quotes are written
// through to the route cache; when the engine fails, an unexpired cache
// entry for the same address pair is served instead. Every served
// comparison, live or cached, lands in the search history.
func (s *Service) Compare(ctx context.Context, pickup, destination types.Location) (Result, error) {
	if pickup.Address == "" || destination.Address == "" {
		return Result{}, ErrMissingEndpoint
	}
	if pickup.Address == destination.Address {
		return Result{}, ErrIdenticalEndpoints
	}

	estimates, err := s.engine.Quote(ctx, pickup.Point(), destination.Point())
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return s.fromCache(ctx, pickup, destination, err)
	}

	res := Result{
		Source:      SourceLive,
		Pickup:      pickup,
		Destination: destination,
		DistanceKm:  estimate.DistanceKm(pickup.Point(), destination.Point()),
		Estimates:   estimates,
		QuotedAt:    time.Now().UTC(),
	}

	s.record(ctx, res)
	if err := s.cache.Put(ctx, routecache.Entry{
		Pickup:      pickup,
		Destination: destination,
		Estimates:   estimates,
		CachedAt:    res.QuotedAt,
	}); err != nil {
		// A cold cache only costs the next fallback; the quote still stands.
		log.Printf("op=quote.cache_put err=%v", err)
	}
	return res, nil
}

// fromCache serves the last unexpired comparison for the address pair, or
// surfaces the engine error when there is none.
func (s *Service) fromCache(ctx context.Context, pickup, destination types.Location, engineErr error) (Result, error) {
	entry, ok, err := s.cache.Get(ctx, pickup.Address, destination.Address)
	if err != nil || !ok {
		return Result{}, engineErr
	}

	res := Result{
		Source:      SourceCache,
		Pickup:      pickup,
		Destination: destination,
		DistanceKm:  estimate.DistanceKm(pickup.Point(), destination.Point()),
		Estimates:   entry.Estimates,
		QuotedAt:    entry.CachedAt,
	}
	s.record(ctx, res)
	return res, nil
}

func (s *Service) record(ctx context.Context, res Result) {
	_, err := s.history.RecordSearch(ctx, history.RouteSearch{
		Pickup:      res.Pickup,
		Destination: res.Destination,
		Estimates:   res.Estimates,
	})
	if err != nil {
		// History is best-effort; losing an entry must not fail the quote.
		log.Printf("op=quote.record_history err=%v", err)
	}
}
