// README: Profile handlers (get/save the single local profile).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/profile"
)

type ProfileHandler struct {
	profile *profile.Service
}

func NewProfileHandler(svc *profile.Service) *ProfileHandler {
	return &ProfileHandler{profile: svc}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	u, err := h.profile.Get(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, u)
}

func (h *ProfileHandler) Save(c *gin.Context) {
	var u profile.User
	if err := c.ShouldBindJSON(&u); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.profile.Save(c.Request.Context(), u); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "saved"})
}
