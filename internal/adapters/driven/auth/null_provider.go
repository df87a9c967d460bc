package auth

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
)

// Ensure NullProvider implements the SessionProvider interface.
var _ driven.SessionProvider = (*NullProvider)(nil)

// NullProvider is a session provider that is never authenticated.
// Used in tests and for commands that run before auth is configured.
type NullProvider struct {
	notifier notifier
}

// NewNullProvider creates a provider with no credential.
func NewNullProvider() *NullProvider {
	return &NullProvider{}
}

// GetToken returns "" since there is no credential.
func (p *NullProvider) GetToken(_ context.Context) (string, error) {
	return "", nil
}

// IsAuthenticated always returns false.
func (p *NullProvider) IsAuthenticated() bool {
	return false
}

// UserID returns "".
func (p *NullProvider) UserID() string {
	return ""
}

// Mode returns AuthModeSession; the value is never presented to a backend.
func (p *NullProvider) Mode() domain.AuthMode {
	return domain.AuthModeSession
}

// Subscribe registers fn; it is never called since state never changes.
func (p *NullProvider) Subscribe(fn func(domain.Session)) func() {
	return p.notifier.subscribe(fn)
}
