package driven

import "context"

// Credential storage keys. Every credential-bearing key must be listed in
// KnownCredentialKeys so the environment-switch guard can purge it.
//
//nolint:gosec // G101: These are storage key names, not actual credentials.
const (
	// KeyAuthToken caches the current bearer token for the API client.
	KeyAuthToken = "auth.token"

	// KeySessionID holds the client-generated session UUID (legacy mode).
	KeySessionID = "auth.session_id"

	// KeyUserID caches the subject of the current credential.
	KeyUserID = "auth.user_id"

	// KeyProviderFingerprint marks which identity-provider configuration the
	// stored credentials belong to. Not itself a credential: the guard
	// rewrites it after a purge rather than clearing it.
	KeyProviderFingerprint = "auth.provider_fingerprint"
)

// KnownCredentialKeys lists every key holding credential material.
// The environment-switch guard clears exactly these on a fingerprint mismatch.
var KnownCredentialKeys = []string{KeyAuthToken, KeySessionID, KeyUserID}

// TokenStore is durable storage for the active credential and its small
// auxiliary markers. Implementations must make Set atomic with respect to
// concurrent Get calls: no reader observes a half-written value.
//
// The store is a cache for the API client layer. It is never the authority
// for "is the user signed in" - that question goes to the SessionProvider.
type TokenStore interface {
	// Get returns the stored value for key, or "" if the key is absent.
	// Absence is not an error.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites the value for key unconditionally.
	Set(ctx context.Context, key, value string) error

	// Clear removes the value for key. Idempotent: clearing an absent key
	// is not an error.
	Clear(ctx context.Context, key string) error

	// ClearAll removes every listed key, best-effort: a failure on one key
	// does not stop the rest. Returns the first error encountered, if any.
	ClearAll(ctx context.Context, keys []string) error
}
