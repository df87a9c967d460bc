package driven

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// SessionProvider abstracts over whichever identity backend is configured,
// exposing a uniform authenticated/userID/token surface.
//
// Implementations handle token refresh transparently: GetToken never returns
// a cached-but-expired bearer token without attempting a refresh first.
type SessionProvider interface {
	// GetToken returns the current credential, or "" when signed out.
	// If the identity backend is unreachable, it falls back to the
	// last-known-good token when still unexpired, otherwise returns ""
	// without error so callers degrade to logged-out behaviour.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if a usable credential is available.
	IsAuthenticated() bool

	// UserID returns the subject of the current credential, or "".
	UserID() string

	// Mode identifies the credential style this provider issues.
	Mode() domain.AuthMode

	// Subscribe registers fn to be called synchronously on every session
	// state transition (sign-in, sign-out, token refresh). The returned
	// function removes the subscription.
	Subscribe(fn func(domain.Session)) (unsubscribe func())
}
