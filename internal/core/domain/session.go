package domain

import "time"

// AuthMode selects how the client identifies itself to the backend.
// Exactly one mode is active per deployment; the mode is read from
// configuration once at boot and never changes mid-process.
type AuthMode string

const (
	// AuthModeBearer presents a signed JWT in an Authorization header.
	AuthModeBearer AuthMode = "bearer"

	// AuthModeSession presents a client-generated session UUID in an
	// X-User-Id header. Legacy deployments without a real identity provider.
	AuthModeSession AuthMode = "session"
)

// IsValid returns true if the auth mode is recognised.
func (m AuthMode) IsValid() bool {
	switch m {
	case AuthModeBearer, AuthModeSession:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m AuthMode) String() string {
	return string(m)
}

// Session is a snapshot of the current identity state as seen by a
// session provider. Subscribers receive a Session on every transition.
type Session struct {
	// Authenticated reports whether a usable credential is present.
	Authenticated bool
	// UserID is the subject of the current credential, if known.
	UserID string
	// Token is the opaque credential: a bearer JWT or a session UUID.
	// Empty when signed out.
	Token string
	// Mode identifies which credential style Token carries.
	Mode AuthMode
}

// BearerToken holds a credential issued by the identity provider together
// with its expiry, used by the bearer session provider's cache.
type BearerToken struct {
	// Value is the raw token string presented to the backend.
	Value string `json:"value"`
	// Subject is the identity the token was issued for.
	Subject string `json:"subject,omitempty"`
	// Expiry is when the token stops being valid. Zero means unknown.
	Expiry time.Time `json:"expiry,omitempty"`
}

// IsExpired returns true if the token has expired.
func (t *BearerToken) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry)
}

// ExpiresWithin returns true if the token expires inside the given window.
// Used to refresh slightly early rather than presenting a token that dies
// mid-request.
func (t *BearerToken) ExpiresWithin(window time.Duration) bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Until(t.Expiry) < window
}
