// README: Comparison result returned to the client; tagged by where it came from.
package quote

import (
	"time"

	"farecast/internal/modules/estimate"
	"farecast/internal/types"
)

// Source tags how a comparison was produced. A request either yields a live
// result, a cached fallback, or an error; there is no fourth outcome.
type Source string

const (
	SourceLive  Source = "live"
	SourceCache Source = "cache"
)

type Result struct {
	Source      Source                   `json:"source"`
	Pickup      types.Location           `json:"pickup"`
	Destination types.Location           `json:"destination"`
	DistanceKm  float64                  `json:"distance_km"`
	Estimates   []estimate.PriceEstimate `json:"estimates"`
	QuotedAt    time.Time                `json:"quoted_at"`
}
