// README: User-pinned routes.
package favorites

import (
	"time"

	"farecast/internal/types"
)

// Favorite is a pinned route. It is created and deleted explicitly and never
// expires on its own.
type Favorite struct {
	ID          types.ID       `json:"id"`
	Name        string         `json:"name"`
	Pickup      types.Location `json:"pickup"`
	Destination types.Location `json:"destination"`
	CreatedAt   time.Time      `json:"created_at"`
}
