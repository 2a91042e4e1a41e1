// README: Completed route searches kept for the history and analytics views.
package history

import (
	"time"

	"farecast/internal/modules/estimate"
	"farecast/internal/types"
)

// RouteSearch is one completed comparison. It is immutable once recorded;
// eviction is the only thing that ever happens to it afterwards.
type RouteSearch struct {
	ID          types.ID                 `json:"id"`
	Pickup      types.Location           `json:"pickup"`
	Destination types.Location           `json:"destination"`
	Estimates   []estimate.PriceEstimate `json:"estimates"`
	SearchedAt  time.Time                `json:"searched_at"`
}
