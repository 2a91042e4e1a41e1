// README: Base handler utilities (JSON helpers, domain error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/estimate"
	"farecast/internal/modules/favorites"
	"farecast/internal/modules/location"
	"farecast/internal/modules/prefs"
	"farecast/internal/modules/profile"
	"farecast/internal/modules/quote"
	"farecast/internal/modules/reports"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeDomainError maps module sentinel errors onto HTTP statuses. Unknown
// errors are hidden behind a generic 500.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quote.ErrMissingEndpoint),
		errors.Is(err, quote.ErrIdenticalEndpoints),
		errors.Is(err, favorites.ErrBadRequest),
		errors.Is(err, profile.ErrBadRequest),
		errors.Is(err, prefs.ErrBadValue),
		errors.Is(err, reports.ErrBadRequest),
		errors.Is(err, location.ErrBadQuery):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, favorites.ErrNotFound),
		errors.Is(err, profile.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, estimate.ErrUnavailable):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
