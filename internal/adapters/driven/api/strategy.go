package api

import (
	"net/http"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// Strategy shapes the auth header for the active deployment mode.
// Selected once at boot; exactly one header style is ever active.
type Strategy interface {
	// Mode identifies the credential style this strategy expects.
	Mode() domain.AuthMode

	// Apply sets the auth header for a non-empty token.
	// Callers must not invoke Apply with an empty token.
	Apply(h http.Header, token string)
}

// BearerStrategy presents the credential as "Authorization: Bearer <token>".
type BearerStrategy struct{}

// Mode returns AuthModeBearer.
func (BearerStrategy) Mode() domain.AuthMode { return domain.AuthModeBearer }

// Apply sets the Authorization header.
func (BearerStrategy) Apply(h http.Header, token string) {
	h.Set("Authorization", "Bearer "+token)
}

// LegacyStrategy presents the credential as "X-User-Id: <token>".
// Used by deployments that identify clients with a session UUID instead of
// a real identity provider.
type LegacyStrategy struct{}

// Mode returns AuthModeSession.
func (LegacyStrategy) Mode() domain.AuthMode { return domain.AuthModeSession }

// Apply sets the X-User-Id header.
func (LegacyStrategy) Apply(h http.Header, token string) {
	h.Set("X-User-Id", token)
}

// StrategyFor returns the strategy for a configured auth mode.
// Unrecognised modes fall back to the legacy strategy.
func StrategyFor(mode domain.AuthMode) Strategy {
	if mode == domain.AuthModeBearer {
		return BearerStrategy{}
	}
	return LegacyStrategy{}
}
