package services

import (
	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/core/ports/driven"
	"github.com/custodia-labs/style-selector/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for the host-persisted options.
const (
	keyStylesUI        = "styleselector.styles_ui"
	keyEnableByDefault = "styleselector.enable_by_default"
)

// SettingsService reads plugin settings from the host option store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current plugin settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.PluginSettings, error) {
	defaults := domain.DefaultPluginSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.PluginSettings{
		EnabledByDefault: s.getBool(keyEnableByDefault, defaults.EnabledByDefault),
		StylesUI:         s.getStylesUI(defaults.StylesUI),
	}

	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.PluginSettings {
	return domain.DefaultPluginSettings()
}

func (s *SettingsService) getStylesUI(defaultVal domain.StylesUIMode) domain.StylesUIMode {
	mode := domain.StylesUIMode(s.configStore.GetString(keyStylesUI))
	if mode.IsValid() {
		return mode
	}
	return defaultVal
}

// getBool distinguishes a stored false from a missing key.
func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	b, ok := val.(bool)
	if !ok {
		return defaultVal
	}
	return b
}
