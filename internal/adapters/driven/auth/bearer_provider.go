package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
)

// Ensure BearerProvider implements the SessionProvider interface.
var _ driven.SessionProvider = (*BearerProvider)(nil)

// defaultRefreshBuffer is how long before expiry a cached token is treated
// as stale and refreshed.
const defaultRefreshBuffer = 5 * time.Minute

// BearerConfig configures a BearerProvider.
type BearerConfig struct {
	// IssuerURL is the OIDC issuer used for discovery and verification.
	IssuerURL string
	// ClientID is the audience expected in issued tokens.
	ClientID string
	// RefreshBuffer overrides defaultRefreshBuffer when positive.
	RefreshBuffer time.Duration
}

// BearerProvider issues signed JWTs for the Authorization header.
// Tokens are cached in memory and refreshed through an oauth2.TokenSource
// before they expire. When the identity provider is unreachable the
// last-known-good token is served until it expires, after which GetToken
// returns "" so callers degrade to logged-out behaviour.
type BearerProvider struct {
	cfg      BearerConfig
	notifier notifier

	mu       sync.RWMutex
	current  domain.BearerToken
	source   oauth2.TokenSource
	verifier *oidc.IDTokenVerifier
}

// NewBearerProvider creates a bearer session provider. Call Connect to
// enable OIDC verification of incoming tokens; without it tokens are
// accepted after a claims-only parse.
func NewBearerProvider(cfg BearerConfig) *BearerProvider {
	if cfg.RefreshBuffer <= 0 {
		cfg.RefreshBuffer = defaultRefreshBuffer
	}
	return &BearerProvider{cfg: cfg}
}

// Connect performs OIDC discovery against the configured issuer and keeps
// the resulting verifier for SetToken. Discovery failure is returned to the
// caller; the provider still works without it.
func (p *BearerProvider) Connect(ctx context.Context) error {
	provider, err := oidc.NewProvider(ctx, p.cfg.IssuerURL)
	if err != nil {
		return fmt.Errorf("oidc discovery: %w", err)
	}

	p.mu.Lock()
	p.verifier = provider.Verifier(&oidc.Config{ClientID: p.cfg.ClientID})
	p.mu.Unlock()
	return nil
}

// SetToken installs a freshly issued token, typically right after login.
// The subject and expiry are read from the token's claims; when a verifier
// is available the signature and audience are checked too. Subscribers are
// notified with the new session state.
func (p *BearerProvider) SetToken(ctx context.Context, raw string) error {
	if raw == "" {
		return domain.ErrInvalidInput
	}

	token := domain.BearerToken{Value: raw}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return &domain.ParseError{Op: "parse token claims", Err: err}
	}
	if sub, err := claims.GetSubject(); err == nil {
		token.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		token.Expiry = exp.Time
	}

	p.mu.RLock()
	verifier := p.verifier
	p.mu.RUnlock()

	if verifier != nil {
		idToken, err := verifier.Verify(ctx, raw)
		if err != nil {
			return fmt.Errorf("verify token: %w", err)
		}
		token.Subject = idToken.Subject
		token.Expiry = idToken.Expiry
	}

	p.mu.Lock()
	p.current = token
	p.mu.Unlock()

	p.notifier.notify(p.session())
	return nil
}

// SetTokenSource installs the refresh source produced by the login flow.
// GetToken consults it whenever the cached token nears expiry.
func (p *BearerProvider) SetTokenSource(src oauth2.TokenSource) {
	p.mu.Lock()
	p.source = src
	p.mu.Unlock()
}

// GetToken returns a valid bearer token, refreshing if necessary.
func (p *BearerProvider) GetToken(ctx context.Context) (string, error) {
	// Fast path: check cache with read lock
	p.mu.RLock()
	if p.current.Value != "" && !p.current.ExpiresWithin(p.cfg.RefreshBuffer) {
		token := p.current.Value
		p.mu.RUnlock()
		return token, nil
	}
	p.mu.RUnlock()

	// Slow path: need refresh, acquire write lock
	p.mu.Lock()

	// Double-check after acquiring write lock
	if p.current.Value != "" && !p.current.ExpiresWithin(p.cfg.RefreshBuffer) {
		token := p.current.Value
		p.mu.Unlock()
		return token, nil
	}

	if p.source == nil {
		// Nothing to refresh with: serve the cached token while it lives.
		token := ""
		if !p.current.IsExpired() {
			token = p.current.Value
		}
		p.mu.Unlock()
		return token, nil
	}

	fresh, err := p.source.Token()
	if err != nil {
		// Refresh failed: fall back to the last-known-good token if it has
		// not actually expired yet, otherwise degrade to signed-out.
		token := ""
		if p.current.Value != "" && !p.current.IsExpired() {
			token = p.current.Value
		}
		p.mu.Unlock()
		return token, nil
	}

	changed := fresh.AccessToken != p.current.Value
	p.current.Value = fresh.AccessToken
	p.current.Expiry = fresh.Expiry
	if sub := subjectOf(fresh.AccessToken); sub != "" {
		p.current.Subject = sub
	}
	token := p.current.Value
	p.mu.Unlock()

	if changed {
		p.notifier.notify(p.session())
	}
	return token, nil
}

// IsAuthenticated returns true if an unexpired token is held.
func (p *BearerProvider) IsAuthenticated() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.Value != "" && !p.current.IsExpired()
}

// UserID returns the subject of the current token, or "".
func (p *BearerProvider) UserID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.Subject
}

// Mode returns AuthModeBearer.
func (p *BearerProvider) Mode() domain.AuthMode {
	return domain.AuthModeBearer
}

// Subscribe registers fn for session transitions.
func (p *BearerProvider) Subscribe(fn func(domain.Session)) func() {
	return p.notifier.subscribe(fn)
}

// SignOut drops the cached token and refresh source and notifies
// subscribers with a signed-out session.
func (p *BearerProvider) SignOut() {
	p.mu.Lock()
	p.current = domain.BearerToken{}
	p.source = nil
	p.mu.Unlock()

	p.notifier.notify(p.session())
}

// session builds the current snapshot for subscribers.
func (p *BearerProvider) session() domain.Session {
	p.mu.RLock()
	defer p.mu.RUnlock()

	authed := p.current.Value != "" && !p.current.IsExpired()
	s := domain.Session{
		Authenticated: authed,
		Mode:          domain.AuthModeBearer,
	}
	if authed {
		s.UserID = p.current.Subject
		s.Token = p.current.Value
	}
	return s
}

// subjectOf extracts the sub claim without verifying the signature.
// Returns "" when the token is not a parseable JWT.
func subjectOf(raw string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
