// README: Community fare reports — user-submitted ground truth for quote accuracy.
package reports

import (
	"time"

	"farecast/internal/types"
)

// FareReport records what a trip actually cost next to what was quoted.
type FareReport struct {
	ID            int64       `json:"id"`
	ServiceID     types.ID    `json:"service_id"`
	Pickup        types.Point `json:"pickup"`
	Destination   types.Point `json:"destination"`
	DistanceKm    float64     `json:"distance_km"`
	ActualFare    float64     `json:"actual_fare"`
	EstimatedFare float64     `json:"estimated_fare"`
	Note          string      `json:"note,omitempty"`
	ReportedAt    time.Time   `json:"reported_at"`
}

// ServiceAccuracy summarizes how far a service's quotes sit from reported
// fares.
type ServiceAccuracy struct {
	ServiceID         types.ID `json:"service_id"`
	ReportCount       int      `json:"report_count"`
	MeanAbsoluteError float64  `json:"mean_absolute_error"`
	MeanActualFare    float64  `json:"mean_actual_fare"`
}
