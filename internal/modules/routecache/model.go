// README: Cached quote sets for recently compared routes.
package routecache

import (
	"time"

	"farecast/internal/modules/estimate"
	"farecast/internal/types"
)

// Entry is one cached comparison. Entries are served only while fresh; the
// TTL is enforced both by Redis expiry and a read-side age check.
type Entry struct {
	Pickup      types.Location           `json:"pickup"`
	Destination types.Location           `json:"destination"`
	Estimates   []estimate.PriceEstimate `json:"estimates"`
	CachedAt    time.Time                `json:"cached_at"`
}

// Key builds the cache key for an address pair. The key is the literal
// concatenation of both address strings: differently formatted addresses for
// the same trip intentionally occupy separate entries.
func Key(pickupAddr, destAddr string) string {
	return pickupAddr + destAddr
}
