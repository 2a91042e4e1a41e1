// README: Preferences service; reads never fail, writes surface their errors.
package prefs

import (
	"context"
	"errors"
)

var ErrBadValue = errors.New("unsupported preference value")

// Store is a flat string key-value table. Get reports ok=false when the key
// has never been written.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Service reads degrade to defaults on any storage error or corrupt value,
// so preference getters can never break a rendering path. Writes return
// their errors; the caller decides whether to surface or swallow them.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Language returns the saved UI language, or "en".
func (s *Service) Language(ctx context.Context) string {
	v, ok, err := s.store.Get(ctx, keyLanguage)
	if err != nil || !ok || !supportedLanguages[v] {
		return DefaultLanguage
	}
	return v
}

func (s *Service) SaveLanguage(ctx context.Context, lang string) error {
	if !supportedLanguages[lang] {
		return ErrBadValue
	}
	return s.store.Set(ctx, keyLanguage, lang)
}

// Theme returns the saved theme mode, or "system".
func (s *Service) Theme(ctx context.Context) string {
	v, ok, err := s.store.Get(ctx, keyTheme)
	if err != nil || !ok {
		return DefaultTheme
	}
	switch v {
	case ThemeLight, ThemeDark, ThemeSystem:
		return v
	}
	return DefaultTheme
}

func (s *Service) SaveTheme(ctx context.Context, theme string) error {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return s.store.Set(ctx, keyTheme, theme)
	}
	return ErrBadValue
}

// OLED reports whether the deep-black dark variant is on. Defaults to true.
func (s *Service) OLED(ctx context.Context) bool {
	return s.boolPref(ctx, keyOLED, true)
}

func (s *Service) SaveOLED(ctx context.Context, on bool) error {
	return s.setBool(ctx, keyOLED, on)
}

func (s *Service) OnboardingComplete(ctx context.Context) bool {
	return s.boolPref(ctx, keyOnboardingComplete, false)
}

func (s *Service) SaveOnboardingComplete(ctx context.Context, done bool) error {
	return s.setBool(ctx, keyOnboardingComplete, done)
}

func (s *Service) NotificationsEnabled(ctx context.Context) bool {
	return s.boolPref(ctx, keyNotificationsEnabled, true)
}

func (s *Service) SaveNotificationsEnabled(ctx context.Context, on bool) error {
	return s.setBool(ctx, keyNotificationsEnabled, on)
}

func (s *Service) InstallPromptDismissed(ctx context.Context) bool {
	return s.boolPref(ctx, keyInstallPromptDismissed, false)
}

func (s *Service) SaveInstallPromptDismissed(ctx context.Context, dismissed bool) error {
	return s.setBool(ctx, keyInstallPromptDismissed, dismissed)
}

// Snapshot gathers every preference with defaults applied.
func (s *Service) Snapshot(ctx context.Context) Preferences {
	return Preferences{
		Language:               s.Language(ctx),
		Theme:                  s.Theme(ctx),
		OLED:                   s.OLED(ctx),
		OnboardingComplete:     s.OnboardingComplete(ctx),
		NotificationsEnabled:   s.NotificationsEnabled(ctx),
		InstallPromptDismissed: s.InstallPromptDismissed(ctx),
	}
}

func (s *Service) boolPref(ctx context.Context, key string, def bool) bool {
	v, ok, err := s.store.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

func (s *Service) setBool(ctx context.Context, key string, v bool) error {
	if v {
		return s.store.Set(ctx, key, "true")
	}
	return s.store.Set(ctx, key, "false")
}
