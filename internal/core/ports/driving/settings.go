package driving

import "github.com/custodia-labs/style-selector/internal/core/domain"

// SettingsService reads the host-persisted plugin options.
type SettingsService interface {
	// Get retrieves the current plugin settings, falling back to defaults.
	Get() (*domain.PluginSettings, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.PluginSettings
}
