package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyOutputPrecision = "output.precision"
	KeyCacheEnabled    = "cache.enabled"
	KeyDataDir         = "data.dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Precision: s.getInt(KeyOutputPrecision, defaults.Output.Precision),
		},
		Cache: domain.CacheSettings{
			Enabled: s.getBool(KeyCacheEnabled, defaults.Cache.Enabled),
		},
		Data: domain.DataSettings{
			Dir: s.configStore.GetString(KeyDataDir),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(KeyOutputPrecision, settings.Output.Precision); err != nil {
		return fmt.Errorf("save output precision: %w", err)
	}
	if err := s.configStore.Set(KeyCacheEnabled, settings.Cache.Enabled); err != nil {
		return fmt.Errorf("save cache enabled: %w", err)
	}
	if err := s.configStore.Set(KeyDataDir, settings.Data.Dir); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}

	return nil
}

// Set updates a single setting by its config key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyOutputPrecision:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
		}
		settings.Output.Precision = n
	case KeyCacheEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		settings.Cache.Enabled = b
	case KeyDataDir:
		settings.Data.Dir = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
