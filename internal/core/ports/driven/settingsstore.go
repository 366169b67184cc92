package driven

import "github.com/plansift/plansift-cli/internal/core/domain"

// SettingsStore loads and persists user settings.
type SettingsStore interface {
	// Load returns the stored settings, or defaults when none exist.
	Load() (domain.Settings, error)

	// Save persists the settings.
	Save(settings domain.Settings) error

	// Path returns the location of the backing file, for diagnostics.
	Path() string
}
