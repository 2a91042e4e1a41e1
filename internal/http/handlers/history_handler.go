// README: History handlers (recent list, route filter, clear).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/history"
)

type HistoryHandler struct {
	history *history.Service
}

func NewHistoryHandler(svc *history.Service) *HistoryHandler {
	return &HistoryHandler{history: svc}
}

// List returns recent searches; with pickup and destination query params it
// narrows to one exact route.
func (h *HistoryHandler) List(c *gin.Context) {
	pickup := c.Query("pickup")
	destination := c.Query("destination")

	var (
		searches []history.RouteSearch
		err      error
	)
	if pickup != "" && destination != "" {
		searches, err = h.history.ForRoute(c.Request.Context(), pickup, destination)
	} else {
		searches, err = h.history.Recent(c.Request.Context())
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if searches == nil {
		searches = []history.RouteSearch{}
	}
	writeJSON(c, http.StatusOK, gin.H{"searches": searches})
}

func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.history.Clear(c.Request.Context()); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
