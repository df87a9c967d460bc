package services

import (
	"context"
	"fmt"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driving"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// tokenAcceptor is implemented by providers that take an externally issued
// credential (bearer mode).
type tokenAcceptor interface {
	SetToken(ctx context.Context, raw string) error
}

// signOuter is implemented by providers whose credential can be discarded
// in memory (bearer mode).
type signOuter interface {
	SignOut()
}

// sessionIniter is implemented by providers that mint their own identity
// (legacy session mode).
type sessionIniter interface {
	Init(ctx context.Context) error
	Reset(ctx context.Context) error
}

// SessionService manages sign-in state on top of whichever session
// provider is configured.
type SessionService struct {
	provider driven.SessionProvider
}

// NewSessionService creates a new session service.
func NewSessionService(provider driven.SessionProvider) *SessionService {
	return &SessionService{provider: provider}
}

// Login stores a credential and makes it the active identity.
//
// In bearer mode the token is handed to the provider, which validates it.
// In legacy session mode no external token exists; a non-empty token is
// rejected and the provider mints its own session UUID instead.
func (s *SessionService) Login(ctx context.Context, token string) (*domain.Session, error) {
	switch p := s.provider.(type) {
	case tokenAcceptor:
		if token == "" {
			return nil, domain.ErrInvalidInput
		}
		if err := p.SetToken(ctx, token); err != nil {
			return nil, fmt.Errorf("set token: %w", err)
		}
	case sessionIniter:
		if token != "" {
			return nil, domain.ErrInvalidInput
		}
		if err := p.Init(ctx); err != nil {
			return nil, fmt.Errorf("init session: %w", err)
		}
	default:
		return nil, domain.ErrNotConfigured
	}

	return s.Current(ctx)
}

// Logout clears the active credential. Idempotent.
func (s *SessionService) Logout(ctx context.Context) error {
	switch p := s.provider.(type) {
	case signOuter:
		p.SignOut()
	case sessionIniter:
		if err := p.Reset(ctx); err != nil {
			return fmt.Errorf("reset session: %w", err)
		}
	default:
		return domain.ErrNotConfigured
	}
	return nil
}

// Current returns a snapshot of the session state.
func (s *SessionService) Current(ctx context.Context) (*domain.Session, error) {
	token, err := s.provider.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}

	session := &domain.Session{Mode: s.provider.Mode()}
	if token != "" {
		session.Authenticated = true
		session.UserID = s.provider.UserID()
		session.Token = token
	}
	return session, nil
}
