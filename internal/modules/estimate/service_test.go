// README: Estimation engine tests (quote invariants + failure injection).
package estimate

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"farecast/internal/config"
	"farecast/internal/types"
)

var (
	testPickup  = types.Point{Lat: 6.5244, Lng: 3.3792}
	testDropoff = types.Point{Lat: 6.6018, Lng: 3.3515}
)

func testEngine(seed int64, failureRate float64, reports ReportCounter) *Engine {
	cfg := config.SimConfig{
		Seed:        seed,
		FailureRate: failureRate,
		// No artificial latency in unit tests.
		MinLatency: 0,
		MaxLatency: 0,
	}
	return NewEngine(cfg, DefaultCatalog(), reports)
}

func TestQuote_Invariants(t *testing.T) {
	// Many seeds so surge/discount/variance paths all get exercised.
	for seed := int64(1); seed <= 200; seed++ {
		eng := testEngine(seed, 0, nil)
		quotes, err := eng.Quote(context.Background(), testPickup, testDropoff)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if len(quotes) != len(DefaultCatalog()) {
			t.Fatalf("seed %d: got %d quotes, want %d", seed, len(quotes), len(DefaultCatalog()))
		}

		for i, q := range quotes {
			if q.Price < 0 {
				t.Errorf("seed %d %s: negative price %.2f", seed, q.ServiceID, q.Price)
			}
			if q.PriceLow > q.Price || q.Price > q.PriceHigh {
				t.Errorf("seed %d %s: band violated: low=%.2f price=%.2f high=%.2f",
					seed, q.ServiceID, q.PriceLow, q.Price, q.PriceHigh)
			}
			if q.Confidence < 30 || q.Confidence > 80 {
				t.Errorf("seed %d %s: confidence %d out of [30, 80]", seed, q.ServiceID, q.Confidence)
			}
			if q.EstimatedTimeMin <= 0 {
				t.Errorf("seed %d %s: non-positive ETA %d", seed, q.ServiceID, q.EstimatedTimeMin)
			}
			if q.Surge != nil && (*q.Surge < 1.0 || *q.Surge > 1.5) {
				t.Errorf("seed %d %s: surge %.3f out of [1.0, 1.5]", seed, q.ServiceID, *q.Surge)
			}
			if q.DiscountPct != nil && (*q.DiscountPct < 10 || *q.DiscountPct > 30) {
				t.Errorf("seed %d %s: discount %d%% out of [10, 30]", seed, q.ServiceID, *q.DiscountPct)
			}
			if i > 0 && quotes[i-1].Price > q.Price {
				t.Errorf("seed %d: quotes not sorted cheapest first at index %d", seed, i)
			}
		}
	}
}

func TestQuote_ConfidenceReflectsServiceClass(t *testing.T) {
	classByID := map[types.ID]ServiceClass{}
	for _, r := range DefaultCatalog() {
		classByID[r.ServiceID] = r.Class
	}

	eng := testEngine(7, 0, nil)
	quotes, err := eng.Quote(context.Background(), testPickup, testDropoff)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range quotes {
		switch classByID[q.ServiceID] {
		case ClassBid:
			if q.Confidence > 41 {
				t.Errorf("%s: bid confidence %d above bid band", q.ServiceID, q.Confidence)
			}
		case ClassApp:
			if q.Confidence < 62 {
				t.Errorf("%s: app confidence %d below app band", q.ServiceID, q.Confidence)
			}
		}
	}
}

func TestQuote_DeterministicWithFixedSeed(t *testing.T) {
	a, err := testEngine(42, 0, nil).Quote(context.Background(), testPickup, testDropoff)
	if err != nil {
		t.Fatal(err)
	}
	b, err := testEngine(42, 0, nil).Quote(context.Background(), testPickup, testDropoff)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different quotes:\n%+v\n%+v", a, b)
	}
}

func TestQuote_FailureInjection(t *testing.T) {
	eng := testEngine(1, 1.0, nil)
	_, err := eng.Quote(context.Background(), testPickup, testDropoff)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
}

func TestQuote_CancelledContext(t *testing.T) {
	cfg := config.SimConfig{Seed: 1, MinLatency: 5 * time.Second, MaxLatency: 10 * time.Second}
	eng := NewEngine(cfg, DefaultCatalog(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Quote(ctx, testPickup, testDropoff)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

type fakeReportCounter struct {
	counts map[types.ID]int
	err    error
}

func (f *fakeReportCounter) CountByService(ctx context.Context) (map[types.ID]int, error) {
	return f.counts, f.err
}

func TestQuote_ReportCounts(t *testing.T) {
	counter := &fakeReportCounter{counts: map[types.ID]int{"uber": 12, "rida": 3}}
	quotes, err := testEngine(5, 0, counter).Quote(context.Background(), testPickup, testDropoff)
	if err != nil {
		t.Fatal(err)
	}
	got := map[types.ID]int{}
	for _, q := range quotes {
		got[q.ServiceID] = q.ReportCount
	}
	if got["uber"] != 12 || got["rida"] != 3 || got["bolt"] != 0 {
		t.Errorf("report counts not propagated: %v", got)
	}
}

func TestQuote_ReportCounterErrorIsIgnored(t *testing.T) {
	counter := &fakeReportCounter{err: errors.New("store down")}
	quotes, err := testEngine(5, 0, counter).Quote(context.Background(), testPickup, testDropoff)
	if err != nil {
		t.Fatalf("counter error must not fail the quote: %v", err)
	}
	for _, q := range quotes {
		if q.ReportCount != 0 {
			t.Errorf("%s: want zero report count on counter error, got %d", q.ServiceID, q.ReportCount)
		}
	}
}
