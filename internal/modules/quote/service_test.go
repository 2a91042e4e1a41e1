// README: Quote service tests (validation, cache fallback, history recording).
package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"farecast/internal/modules/estimate"
	"farecast/internal/modules/history"
	"farecast/internal/modules/routecache"
	"farecast/internal/types"
)

type fakeEngine struct {
	estimates []estimate.PriceEstimate
	err       error
	calls     int
}

func (f *fakeEngine) Quote(ctx context.Context, pickup, dropoff types.Point) ([]estimate.PriceEstimate, error) {
	f.calls++
	return f.estimates, f.err
}

type fakeCache struct {
	entries map[string]routecache.Entry
	getErr  error
	putErr  error
	puts    int
}

func (f *fakeCache) Get(ctx context.Context, pickupAddr, destAddr string) (routecache.Entry, bool, error) {
	if f.getErr != nil {
		return routecache.Entry{}, false, f.getErr
	}
	e, ok := f.entries[routecache.Key(pickupAddr, destAddr)]
	return e, ok, nil
}

func (f *fakeCache) Put(ctx context.Context, e routecache.Entry) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	if f.entries == nil {
		f.entries = map[string]routecache.Entry{}
	}
	f.entries[routecache.Key(e.Pickup.Address, e.Destination.Address)] = e
	return nil
}

type fakeHistory struct {
	recorded []history.RouteSearch
	err      error
}

func (f *fakeHistory) RecordSearch(ctx context.Context, s history.RouteSearch) (types.ID, error) {
	if f.err != nil {
		return "", f.err
	}
	f.recorded = append(f.recorded, s)
	return "id", nil
}

var (
	pickupLoc = types.Location{Address: "A, Lagos", Lat: 6.5, Lng: 3.3}
	destLoc   = types.Location{Address: "B, Lagos", Lat: 6.6, Lng: 3.5}
)

func testEstimates() []estimate.PriceEstimate {
	return []estimate.PriceEstimate{
		{ServiceID: "bolt", ServiceName: "Bolt", Price: 2500, PriceLow: 2250, PriceHigh: 2880, Currency: "NGN", Confidence: 70},
	}
}

func TestCompare_Validation(t *testing.T) {
	svc := NewService(&fakeEngine{}, &fakeCache{}, &fakeHistory{})
	ctx := context.Background()

	if _, err := svc.Compare(ctx, types.Location{}, destLoc); !errors.Is(err, ErrMissingEndpoint) {
		t.Errorf("missing pickup: got %v", err)
	}
	if _, err := svc.Compare(ctx, pickupLoc, types.Location{}); !errors.Is(err, ErrMissingEndpoint) {
		t.Errorf("missing destination: got %v", err)
	}
	samePlace := pickupLoc
	if _, err := svc.Compare(ctx, pickupLoc, samePlace); !errors.Is(err, ErrIdenticalEndpoints) {
		t.Errorf("identical endpoints: got %v", err)
	}
}

func TestCompare_LiveResult(t *testing.T) {
	eng := &fakeEngine{estimates: testEstimates()}
	cache := &fakeCache{}
	hist := &fakeHistory{}
	svc := NewService(eng, cache, hist)

	res, err := svc.Compare(context.Background(), pickupLoc, destLoc)
	if err != nil {
		t.Fatal(err)
	}
	if res.Source != SourceLive {
		t.Errorf("source = %q, want live", res.Source)
	}
	if res.DistanceKm <= 0 {
		t.Errorf("distance = %f, want positive", res.DistanceKm)
	}
	if len(res.Estimates) != 1 {
		t.Fatalf("estimates = %d, want 1", len(res.Estimates))
	}
	if len(hist.recorded) != 1 {
		t.Errorf("history writes = %d, want 1", len(hist.recorded))
	}
	if cache.puts != 1 {
		t.Errorf("cache writes = %d, want 1", cache.puts)
	}
}

func TestCompare_FallsBackToCacheOnEngineFailure(t *testing.T) {
	cache := &fakeCache{entries: map[string]routecache.Entry{}}
	cache.entries[routecache.Key(pickupLoc.Address, destLoc.Address)] = routecache.Entry{
		Pickup:      pickupLoc,
		Destination: destLoc,
		Estimates:   testEstimates(),
		CachedAt:    time.Now().UTC().Add(-10 * time.Minute),
	}
	hist := &fakeHistory{}
	svc := NewService(&fakeEngine{err: estimate.ErrUnavailable}, cache, hist)

	res, err := svc.Compare(context.Background(), pickupLoc, destLoc)
	if err != nil {
		t.Fatal(err)
	}
	if res.Source != SourceCache {
		t.Errorf("source = %q, want cache", res.Source)
	}
	if len(hist.recorded) != 1 {
		t.Errorf("cached fallback should still land in history, writes = %d", len(hist.recorded))
	}
}

func TestCompare_EngineFailureWithEmptyCache(t *testing.T) {
	svc := NewService(&fakeEngine{err: estimate.ErrUnavailable}, &fakeCache{}, &fakeHistory{})

	_, err := svc.Compare(context.Background(), pickupLoc, destLoc)
	if !errors.Is(err, estimate.ErrUnavailable) {
		t.Fatalf("got %v, want the engine error", err)
	}
}

func TestCompare_CacheReadErrorSurfacesEngineError(t *testing.T) {
	cache := &fakeCache{getErr: errors.New("redis down")}
	svc := NewService(&fakeEngine{err: estimate.ErrUnavailable}, cache, &fakeHistory{})

	_, err := svc.Compare(context.Background(), pickupLoc, destLoc)
	if !errors.Is(err, estimate.ErrUnavailable) {
		t.Fatalf("got %v, want the engine error, not the cache one", err)
	}
}

func TestCompare_WriteFailuresDoNotFailTheQuote(t *testing.T) {
	eng := &fakeEngine{estimates: testEstimates()}
	cache := &fakeCache{putErr: errors.New("redis down")}
	hist := &fakeHistory{err: errors.New("pg down")}
	svc := NewService(eng, cache, hist)

	res, err := svc.Compare(context.Background(), pickupLoc, destLoc)
	if err != nil {
		t.Fatalf("best-effort writes must not fail the quote: %v", err)
	}
	if res.Source != SourceLive {
		t.Errorf("source = %q, want live", res.Source)
	}
}

func TestCompare_CancelledContextIsNotServedFromCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cache := &fakeCache{entries: map[string]routecache.Entry{
		routecache.Key(pickupLoc.Address, destLoc.Address): {Estimates: testEstimates()},
	}}
	svc := NewService(&fakeEngine{err: context.Canceled}, cache, &fakeHistory{})

	_, err := svc.Compare(ctx, pickupLoc, destLoc)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
