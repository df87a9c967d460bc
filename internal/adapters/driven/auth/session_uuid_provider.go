package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
)

// Ensure SessionUUIDProvider implements the SessionProvider interface.
var _ driven.SessionProvider = (*SessionUUIDProvider)(nil)

// SessionUUIDProvider backs the legacy X-User-Id mode. The credential is a
// client-generated UUID persisted in the token store; it never expires and
// needs no refresh. Deployments without a real identity provider use this.
type SessionUUIDProvider struct {
	store    driven.TokenStore
	notifier notifier

	mu     sync.RWMutex
	cached string
}

// NewSessionUUIDProvider creates a legacy session provider backed by store.
func NewSessionUUIDProvider(store driven.TokenStore) *SessionUUIDProvider {
	return &SessionUUIDProvider{store: store}
}

// Init loads the persisted session UUID, minting and persisting a new one
// on first run. Call once at boot, before the provider is used.
func (p *SessionUUIDProvider) Init(ctx context.Context) error {
	id, err := p.store.Get(ctx, driven.KeySessionID)
	if err != nil {
		return fmt.Errorf("load session id: %w", err)
	}

	if id == "" {
		id = uuid.NewString()
		if err := p.store.Set(ctx, driven.KeySessionID, id); err != nil {
			return fmt.Errorf("persist session id: %w", err)
		}
	}

	p.mu.Lock()
	p.cached = id
	p.mu.Unlock()

	p.notifier.notify(p.session())
	return nil
}

// GetToken returns the session UUID, loading it from the store on a cache
// miss. Returns "" without error when no session exists yet.
func (p *SessionUUIDProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.RLock()
	if p.cached != "" {
		id := p.cached
		p.mu.RUnlock()
		return id, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" {
		return p.cached, nil
	}

	id, err := p.store.Get(ctx, driven.KeySessionID)
	if err != nil {
		return "", fmt.Errorf("load session id: %w", err)
	}
	p.cached = id
	return id, nil
}

// IsAuthenticated returns true once a session UUID exists.
func (p *SessionUUIDProvider) IsAuthenticated() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cached != ""
}

// UserID returns the session UUID. In legacy mode the session id is the
// user identity.
func (p *SessionUUIDProvider) UserID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cached
}

// Mode returns AuthModeSession.
func (p *SessionUUIDProvider) Mode() domain.AuthMode {
	return domain.AuthModeSession
}

// Subscribe registers fn for session transitions.
func (p *SessionUUIDProvider) Subscribe(fn func(domain.Session)) func() {
	return p.notifier.subscribe(fn)
}

// Reset discards the current session UUID, removing it from the store and
// notifying subscribers. The next Init mints a fresh identity.
func (p *SessionUUIDProvider) Reset(ctx context.Context) error {
	if err := p.store.Clear(ctx, driven.KeySessionID); err != nil {
		return fmt.Errorf("clear session id: %w", err)
	}

	p.mu.Lock()
	p.cached = ""
	p.mu.Unlock()

	p.notifier.notify(p.session())
	return nil
}

// session builds the current snapshot for subscribers.
func (p *SessionUUIDProvider) session() domain.Session {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := domain.Session{Mode: domain.AuthModeSession}
	if p.cached != "" {
		s.Authenticated = true
		s.UserID = p.cached
		s.Token = p.cached
	}
	return s
}
