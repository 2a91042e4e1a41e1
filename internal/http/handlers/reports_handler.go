// README: Fare report handlers (submit, list, accuracy summary).
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/reports"
	"farecast/internal/types"
)

type ReportsHandler struct {
	reports *reports.Service
}

func NewReportsHandler(svc *reports.Service) *ReportsHandler {
	return &ReportsHandler{reports: svc}
}

type submitReportReq struct {
	ServiceID     string      `json:"service_id"`
	Pickup        types.Point `json:"pickup"`
	Destination   types.Point `json:"destination"`
	DistanceKm    float64     `json:"distance_km"`
	ActualFare    float64     `json:"actual_fare"`
	EstimatedFare float64     `json:"estimated_fare"`
	Note          string      `json:"note"`
}

func (h *ReportsHandler) Submit(c *gin.Context) {
	var req submitReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	saved, err := h.reports.Submit(c.Request.Context(), reports.FareReport{
		ServiceID:     types.ID(req.ServiceID),
		Pickup:        req.Pickup,
		Destination:   req.Destination,
		DistanceKm:    req.DistanceKm,
		ActualFare:    req.ActualFare,
		EstimatedFare: req.EstimatedFare,
		Note:          req.Note,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, saved)
}

func (h *ReportsHandler) List(c *gin.Context) {
	serviceID := c.Query("service")
	if serviceID == "" {
		writeError(c, http.StatusBadRequest, "service query param is required")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	list, err := h.reports.ForService(c.Request.Context(), types.ID(serviceID), limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if list == nil {
		list = []reports.FareReport{}
	}
	writeJSON(c, http.StatusOK, gin.H{"reports": list})
}

func (h *ReportsHandler) Summary(c *gin.Context) {
	acc, err := h.reports.Accuracy(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if acc == nil {
		acc = []reports.ServiceAccuracy{}
	}
	writeJSON(c, http.StatusOK, gin.H{"services": acc})
}
