package services

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
	"github.com/tailorkit/tailor-cli/internal/logger"
)

// AuthSyncService mirrors session-provider transitions into the token
// store, so the stored credential always reflects the live session.
//
// Writes use a background context: a sync triggered by a request must not
// die with that request's context. Failures are logged and otherwise
// swallowed; the store then reads as logged-out, which is the safe state.
type AuthSyncService struct {
	provider driven.SessionProvider
	store    driven.TokenStore
}

// NewAuthSyncService creates an auth sync service.
func NewAuthSyncService(provider driven.SessionProvider, store driven.TokenStore) *AuthSyncService {
	return &AuthSyncService{provider: provider, store: store}
}

// Start subscribes to the provider. The returned function stops syncing.
func (s *AuthSyncService) Start() (stop func()) {
	return s.provider.Subscribe(s.apply)
}

// apply writes one session transition to the store.
func (s *AuthSyncService) apply(session domain.Session) {
	ctx := context.Background()

	if !session.Authenticated {
		if err := s.store.Clear(ctx, driven.KeyAuthToken); err != nil {
			logger.Warn("auth sync: clear token: %v", err)
		}
		if err := s.store.Clear(ctx, driven.KeyUserID); err != nil {
			logger.Warn("auth sync: clear user id: %v", err)
		}
		return
	}

	if err := s.store.Set(ctx, driven.KeyAuthToken, session.Token); err != nil {
		logger.Warn("auth sync: store token: %v", err)
		// A half-synced store is worse than a logged-out one.
		if err := s.store.Clear(ctx, driven.KeyAuthToken); err != nil {
			logger.Warn("auth sync: clear token after failed store: %v", err)
		}
		return
	}
	if err := s.store.Set(ctx, driven.KeyUserID, session.UserID); err != nil {
		logger.Warn("auth sync: store user id: %v", err)
	}
}
