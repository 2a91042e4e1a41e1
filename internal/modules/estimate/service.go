// README: Estimation engine; synthesizes per-service fare quotes with variance, surge, and discounts.
package estimate

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"farecast/internal/config"
	"farecast/internal/types"
)

// ErrUnavailable is the injected transient failure. Callers fall back to the
// route cache when they see it.
var ErrUnavailable = errors.New("fare providers unavailable")

// ReportCounter supplies the number of community fare reports per service,
// shown alongside each quote as a rough trust signal.
type ReportCounter interface {
	CountByService(ctx context.Context) (map[types.ID]int, error)
}

const (
	// varianceBand is the ± fraction applied to every base price to simulate
	// inter-service competition.
	varianceBand = 0.30
	// localClassMultiplier is the flat undercut local fleets apply.
	localClassMultiplier = 0.85

	surgeChance    = 0.20
	surgeMaxExtra  = 0.5
	discountChance = 0.15
	discountMinPct = 10
	discountMaxPct = 30

	// Displayed band around the quoted price.
	bandLowFactor  = 0.90
	bandHighFactor = 1.15

	// avgSpeedKmh reflects typical Lagos traffic, not free-flow speed.
	avgSpeedKmh = 22.0
)

type Engine struct {
	catalog []Rate
	cfg     config.SimConfig
	reports ReportCounter

	// rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine builds an engine over the given rate catalog. A zero seed in cfg
// falls back to wall-clock seeding; tests pass a fixed seed for reproducible
// quotes. reports may be nil, in which case report counts are all zero.
func NewEngine(cfg config.SimConfig, catalog []Rate, reports ReportCounter) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		catalog: catalog,
		cfg:     cfg,
		reports: reports,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Quote synthesizes one estimate per catalog service for the given trip,
// sorted cheapest first. It simulates provider latency and may return
// ErrUnavailable per the configured failure rate. Identical pickup and
// dropoff is the caller's responsibility to reject; the engine only assumes
// the coordinates are valid.
func (e *Engine) Quote(ctx context.Context, pickup, dropoff types.Point) ([]PriceEstimate, error) {
	if err := e.simulateLatency(ctx); err != nil {
		return nil, err
	}

	e.mu.Lock()
	failed := e.rng.Float64() < e.cfg.FailureRate
	e.mu.Unlock()
	if failed {
		return nil, ErrUnavailable
	}

	distance := DistanceKm(pickup, dropoff)

	counts := map[types.ID]int{}
	if e.reports != nil {
		// Report counts are decoration; a store error must not kill the quote.
		if m, err := e.reports.CountByService(ctx); err == nil {
			counts = m
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]PriceEstimate, 0, len(e.catalog))
	for _, r := range e.catalog {
		out = append(out, e.quoteOne(r, distance, counts[r.ServiceID]))
	}
	sortByFare(out, func(p PriceEstimate) float64 { return p.Price })
	return out, nil
}

// quoteOne prices a single service. Caller must hold e.mu.
func (e *Engine) quoteOne(r Rate, distanceKm float64, reportCount int) PriceEstimate {
	base := r.BaseFare + r.PerKm*distanceKm

	price := base * (1 + (e.rng.Float64()*2-1)*varianceBand)
	if r.Class == ClassLocal {
		price *= localClassMultiplier
	}

	est := PriceEstimate{
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		Currency:    r.Currency,
		VehicleType: r.VehicleType,
		Source:      "simulated",
		ReportCount: reportCount,
	}

	if e.rng.Float64() < surgeChance {
		s := 1 + e.rng.Float64()*surgeMaxExtra
		price *= s
		est.Surge = &s
	}
	if e.rng.Float64() < discountChance {
		pct := discountMinPct + e.rng.Intn(discountMaxPct-discountMinPct+1)
		price *= 1 - float64(pct)/100
		est.DiscountPct = &pct
	}

	est.Price = roundToTen(price)
	est.PriceLow = math.Floor(price*bandLowFactor/10) * 10
	est.PriceHigh = math.Ceil(price*bandHighFactor/10) * 10
	est.Confidence = e.confidence(r.Class)
	est.EstimatedTimeMin = e.travelTimeMin(distanceKm)
	return est
}

// confidence is a static heuristic in [30, 80]: formula-priced services rank
// highest, negotiated bids lowest. Caller must hold e.mu.
func (e *Engine) confidence(class ServiceClass) int {
	switch class {
	case ClassBid:
		return 30 + e.rng.Intn(12)
	case ClassLocal:
		return 45 + e.rng.Intn(15)
	default:
		return 62 + e.rng.Intn(19)
	}
}

// travelTimeMin combines drive time at city average speed with a pickup wait.
// Caller must hold e.mu.
func (e *Engine) travelTimeMin(distanceKm float64) int {
	drive := int(math.Ceil(distanceKm / avgSpeedKmh * 60))
	wait := 3 + e.rng.Intn(8)
	return drive + wait
}

// simulateLatency sleeps for a random duration inside the configured band,
// honoring context cancellation.
func (e *Engine) simulateLatency(ctx context.Context) error {
	span := e.cfg.MaxLatency - e.cfg.MinLatency
	if span < 0 {
		span = 0
	}
	e.mu.Lock()
	d := e.cfg.MinLatency
	if span > 0 {
		d += time.Duration(e.rng.Int63n(int64(span)))
	}
	e.mu.Unlock()
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func roundToTen(v float64) float64 {
	return math.Round(v/10) * 10
}
