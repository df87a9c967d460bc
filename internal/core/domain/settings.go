package domain

import "time"

// Default configuration values.
const (
	// DefaultBaseURL is the production backend.
	DefaultBaseURL = "https://api.tailorkit.dev"

	// DefaultTimeout allows for slow AI-generation endpoints.
	DefaultTimeout = 60 * time.Second

	// DefaultRateLimit caps outgoing requests per second. Zero disables
	// client-side limiting.
	DefaultRateLimit = 5
)

// APISettings configures the backend API client.
type APISettings struct {
	// BaseURL is the backend base URL.
	BaseURL string
	// Timeout is the per-request timeout.
	Timeout time.Duration
	// RateLimit is the maximum requests per second (0 = unlimited).
	RateLimit int
}

// AuthSettings configures the identity layer.
type AuthSettings struct {
	// Mode selects bearer-token or legacy session-UUID identification.
	Mode AuthMode
	// IssuerURL is the OIDC issuer (bearer mode only).
	IssuerURL string
	// ClientID is the OAuth client ID registered with the issuer.
	ClientID string
	// PublicKey is the identity provider's publishable key. Its fingerprint
	// detects environment switches between runs.
	PublicKey string
}

// AppSettings aggregates all user-configurable settings.
type AppSettings struct {
	API  APISettings
	Auth AuthSettings
}

// DefaultAppSettings returns settings used when nothing is configured.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		API: APISettings{
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultTimeout,
			RateLimit: DefaultRateLimit,
		},
		Auth: AuthSettings{
			Mode: AuthModeSession,
		},
	}
}

// Validate checks settings consistency. Bearer mode needs an issuer
// and client ID; session mode needs neither.
func (s *AppSettings) Validate() error {
	if s.API.BaseURL == "" {
		return ErrInvalidInput
	}
	if !s.Auth.Mode.IsValid() {
		return ErrInvalidInput
	}
	if s.Auth.Mode == AuthModeBearer && (s.Auth.IssuerURL == "" || s.Auth.ClientID == "") {
		return ErrNotConfigured
	}
	return nil
}
