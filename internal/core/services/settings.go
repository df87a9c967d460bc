package services

import (
	"fmt"
	"time"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAPIBaseURL   = "api.base_url"
	keyAPITimeout   = "api.timeout_seconds"
	keyAPIRateLimit = "api.rate_limit_per_sec"
	keyAuthMode     = "auth.mode"
	keyAuthIssuer   = "auth.issuer_url"
	keyAuthClientID = "auth.client_id"
	keyAuthPubKey   = "auth.public_key"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, with defaults applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:   s.getString(keyAPIBaseURL, defaults.API.BaseURL),
			Timeout:   s.getTimeout(defaults.API.Timeout),
			RateLimit: s.getInt(keyAPIRateLimit, defaults.API.RateLimit),
		},
		Auth: domain.AuthSettings{
			Mode:      s.getMode(defaults.Auth.Mode),
			IssuerURL: s.configStore.GetString(keyAuthIssuer),
			ClientID:  s.configStore.GetString(keyAuthClientID),
			PublicKey: s.configStore.GetString(keyAuthPubKey),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyAPIBaseURL, settings.API.BaseURL); err != nil {
		return fmt.Errorf("save base url: %w", err)
	}
	if err := s.configStore.Set(keyAPITimeout, int(settings.API.Timeout.Seconds())); err != nil {
		return fmt.Errorf("save timeout: %w", err)
	}
	if err := s.configStore.Set(keyAPIRateLimit, settings.API.RateLimit); err != nil {
		return fmt.Errorf("save rate limit: %w", err)
	}
	if err := s.configStore.Set(keyAuthMode, settings.Auth.Mode.String()); err != nil {
		return fmt.Errorf("save auth mode: %w", err)
	}
	if err := s.configStore.Set(keyAuthIssuer, settings.Auth.IssuerURL); err != nil {
		return fmt.Errorf("save issuer url: %w", err)
	}
	if err := s.configStore.Set(keyAuthClientID, settings.Auth.ClientID); err != nil {
		return fmt.Errorf("save client id: %w", err)
	}
	if err := s.configStore.Set(keyAuthPubKey, settings.Auth.PublicKey); err != nil {
		return fmt.Errorf("save public key: %w", err)
	}

	return nil
}

// getString returns the configured string or the default when unset.
func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

// getInt returns the configured int or the default when unset.
func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetInt(key)
	}
	return def
}

// getTimeout reads the timeout in seconds, falling back for unset or
// non-positive values.
func (s *SettingsService) getTimeout(def time.Duration) time.Duration {
	if v := s.configStore.GetInt(keyAPITimeout); v > 0 {
		return time.Duration(v) * time.Second
	}
	return def
}

// getMode reads the auth mode, falling back for unset or invalid values.
func (s *SettingsService) getMode(def domain.AuthMode) domain.AuthMode {
	mode := domain.AuthMode(s.configStore.GetString(keyAuthMode))
	if mode.IsValid() {
		return mode
	}
	return def
}
