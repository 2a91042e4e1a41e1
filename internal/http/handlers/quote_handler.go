// README: Quote handler; one POST endpoint producing a full comparison.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/quote"
	"farecast/internal/types"
)

type QuoteHandler struct {
	quotes *quote.Service
}

func NewQuoteHandler(svc *quote.Service) *QuoteHandler {
	return &QuoteHandler{quotes: svc}
}

type compareReq struct {
	Pickup      types.Location `json:"pickup"`
	Destination types.Location `json:"destination"`
}

func (h *QuoteHandler) Compare(c *gin.Context) {
	var req compareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := h.quotes.Compare(c.Request.Context(), req.Pickup, req.Destination)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
