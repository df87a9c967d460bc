package driving

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// SessionService manages sign-in state for external actors.
type SessionService interface {
	// Login stores a credential and makes it the active identity.
	// In bearer mode the token is validated for well-formedness first.
	Login(ctx context.Context, token string) (*domain.Session, error)

	// Logout clears the active credential. Idempotent.
	Logout(ctx context.Context) error

	// Current returns a snapshot of the session state.
	Current(ctx context.Context) (*domain.Session, error)
}
