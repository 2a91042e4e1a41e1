// README: Location handlers; autocomplete, reverse and forward geocoding.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/location"
	"farecast/internal/types"
)

type LocationHandler struct {
	locations *location.Service
}

func NewLocationHandler(svc *location.Service) *LocationHandler {
	return &LocationHandler{locations: svc}
}

func (h *LocationHandler) Suggest(c *gin.Context) {
	suggestions := h.locations.Suggest(c.Query("q"))
	if suggestions == nil {
		suggestions = []types.Location{}
	}
	writeJSON(c, http.StatusOK, gin.H{"suggestions": suggestions})
}

func (h *LocationHandler) Reverse(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		writeError(c, http.StatusBadRequest, "lat and lng are required numbers")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		writeError(c, http.StatusBadRequest, "coordinates out of range")
		return
	}

	loc := h.locations.Reverse(c.Request.Context(), types.Point{Lat: lat, Lng: lng})
	writeJSON(c, http.StatusOK, loc)
}

func (h *LocationHandler) Search(c *gin.Context) {
	results, err := h.locations.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"results": results})
}
