// README: User preference keys, valid values, and defaults.
package prefs

// Storage keys. Values are stored as plain strings; booleans as "true"/"false".
const (
	keyLanguage               = "language"
	keyTheme                  = "theme"
	keyOLED                   = "oled"
	keyOnboardingComplete     = "onboarding_complete"
	keyNotificationsEnabled   = "notifications_enabled"
	keyInstallPromptDismissed = "install_prompt_dismissed"
)

const (
	DefaultLanguage = "en"
	DefaultTheme    = ThemeSystem
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Languages the UI ships strings for.
var supportedLanguages = map[string]bool{
	"en":  true, // English
	"yo":  true, // Yoruba
	"ig":  true, // Igbo
	"ha":  true, // Hausa
	"pcm": true, // Nigerian Pidgin
}

// Preferences is the full snapshot returned to the client.
type Preferences struct {
	Language               string `json:"language"`
	Theme                  string `json:"theme"`
	OLED                   bool   `json:"oled"`
	OnboardingComplete     bool   `json:"onboarding_complete"`
	NotificationsEnabled   bool   `json:"notifications_enabled"`
	InstallPromptDismissed bool   `json:"install_prompt_dismissed"`
}
