// README: Offline quote simulator; runs the estimation engine without the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"farecast/internal/config"
	"farecast/internal/modules/estimate"
	"farecast/internal/types"
)

// faresim prints a fare comparison for one trip straight from the engine.
// Useful for eyeballing catalog changes and for reproducing a quote from
// its seed.
func main() {
	var (
		seed      = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
		pickupLat = flag.Float64("pickup-lat", 6.5244, "pickup latitude")
		pickupLng = flag.Float64("pickup-lng", 3.3792, "pickup longitude")
		destLat   = flag.Float64("dest-lat", 6.4281, "destination latitude")
		destLng   = flag.Float64("dest-lng", 3.4219, "destination longitude")
		runs      = flag.Int("runs", 1, "number of comparisons to run")
	)
	flag.Parse()

	cfg := config.SimConfig{Seed: *seed}
	engine := estimate.NewEngine(cfg, estimate.DefaultCatalog(), nil)

	pickup := types.Point{Lat: *pickupLat, Lng: *pickupLng}
	dest := types.Point{Lat: *destLat, Lng: *destLng}
	fmt.Printf("trip: %.4f,%.4f -> %.4f,%.4f (%.2f km)\n\n",
		pickup.Lat, pickup.Lng, dest.Lat, dest.Lng, estimate.DistanceKm(pickup, dest))

	for run := 0; run < *runs; run++ {
		quotes, err := engine.Quote(context.Background(), pickup, dest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run %d: %v\n", run+1, err)
			continue
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SERVICE\tPRICE\tRANGE\tETA\tCONF\tFLAGS")
		for _, q := range quotes {
			flags := ""
			if q.Surge != nil {
				flags += fmt.Sprintf("surge x%.2f ", *q.Surge)
			}
			if q.DiscountPct != nil {
				flags += fmt.Sprintf("-%d%%", *q.DiscountPct)
			}
			fmt.Fprintf(w, "%s\t%.0f %s\t%.0f-%.0f\t%d min\t%d\t%s\n",
				q.ServiceName, q.Price, q.Currency, q.PriceLow, q.PriceHigh,
				q.EstimatedTimeMin, q.Confidence, flags)
		}
		w.Flush()
		fmt.Println()
	}
}
