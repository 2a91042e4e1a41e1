// README: Per-service fare quote model and the rate catalog entry shape.
package estimate

import "farecast/internal/types"

// ServiceClass groups ride services by how their fares are set. App-dispatch
// services price by formula, local fleets undercut them with a flat discount,
// and bid services negotiate per trip (so their quotes are the least reliable).
type ServiceClass string

const (
	ClassApp   ServiceClass = "app"
	ClassLocal ServiceClass = "local"
	ClassBid   ServiceClass = "bid"
)

// Rate is one catalog entry: the published fare formula for a ride service.
type Rate struct {
	ServiceID   types.ID
	ServiceName string
	Class       ServiceClass
	VehicleType string
	BaseFare    float64
	PerKm       float64
	Currency    string
}

// PriceEstimate is a single synthesized fare quote. Surge and Discount are
// nil when the corresponding event did not fire for this quote.
type PriceEstimate struct {
	ServiceID        types.ID `json:"service_id"`
	ServiceName      string   `json:"service_name"`
	Price            float64  `json:"price"`
	PriceLow         float64  `json:"price_low"`
	PriceHigh        float64  `json:"price_high"`
	Currency         string   `json:"currency"`
	EstimatedTimeMin int      `json:"estimated_time_min"`
	VehicleType      string   `json:"vehicle_type"`
	Surge            *float64 `json:"surge,omitempty"`
	DiscountPct      *int     `json:"discount_pct,omitempty"`
	Confidence       int      `json:"confidence"`
	Source           string   `json:"source"`
	ReportCount      int      `json:"report_count"`
}
