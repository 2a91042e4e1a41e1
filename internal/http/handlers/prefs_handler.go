// README: Preference handlers; partial updates, full snapshot reads.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/prefs"
)

type PrefsHandler struct {
	prefs *prefs.Service
}

func NewPrefsHandler(svc *prefs.Service) *PrefsHandler {
	return &PrefsHandler{prefs: svc}
}

func (h *PrefsHandler) Get(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.prefs.Snapshot(c.Request.Context()))
}

// Absent fields are left untouched, so the client can flip one switch
// without resending the rest.
type updatePrefsReq struct {
	Language               *string `json:"language"`
	Theme                  *string `json:"theme"`
	OLED                   *bool   `json:"oled"`
	OnboardingComplete     *bool   `json:"onboarding_complete"`
	NotificationsEnabled   *bool   `json:"notifications_enabled"`
	InstallPromptDismissed *bool   `json:"install_prompt_dismissed"`
}

func (h *PrefsHandler) Update(c *gin.Context) {
	var req updatePrefsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx := c.Request.Context()
	steps := []func() error{
		func() error {
			if req.Language == nil {
				return nil
			}
			return h.prefs.SaveLanguage(ctx, *req.Language)
		},
		func() error {
			if req.Theme == nil {
				return nil
			}
			return h.prefs.SaveTheme(ctx, *req.Theme)
		},
		func() error {
			if req.OLED == nil {
				return nil
			}
			return h.prefs.SaveOLED(ctx, *req.OLED)
		},
		func() error {
			if req.OnboardingComplete == nil {
				return nil
			}
			return h.prefs.SaveOnboardingComplete(ctx, *req.OnboardingComplete)
		},
		func() error {
			if req.NotificationsEnabled == nil {
				return nil
			}
			return h.prefs.SaveNotificationsEnabled(ctx, *req.NotificationsEnabled)
		},
		func() error {
			if req.InstallPromptDismissed == nil {
				return nil
			}
			return h.prefs.SaveInstallPromptDismissed(ctx, *req.InstallPromptDismissed)
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			writeDomainError(c, err)
			return
		}
	}

	writeJSON(c, http.StatusOK, h.prefs.Snapshot(ctx))
}
