package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
	"github.com/tailorkit/tailor-cli/internal/logger"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 12

// EnvironmentGuard detects a switch of identity-provider environment
// between runs. Credentials issued by one environment are garbage in
// another, and presenting them produces confusing 401s, so on a
// fingerprint mismatch the guard purges every known credential key and
// records the new fingerprint.
type EnvironmentGuard struct {
	store       driven.TokenStore
	fingerprint string
}

// NewEnvironmentGuard creates a guard for the given provider identity.
// The fingerprint covers the provider's publishable key and the backend
// base URL: a change to either means stored credentials are stale.
func NewEnvironmentGuard(store driven.TokenStore, publicKey, baseURL string) *EnvironmentGuard {
	return &EnvironmentGuard{
		store:       store,
		fingerprint: Fingerprint(publicKey, baseURL),
	}
}

// Fingerprint derives the environment fingerprint: the first 12 hex
// characters of SHA-256 over the publishable key and base URL.
func Fingerprint(publicKey, baseURL string) string {
	sum := sha256.Sum256([]byte(publicKey + baseURL))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

// Check compares the stored fingerprint against the current one, purging
// stored credentials on a mismatch. Run once at boot, before any provider
// reads the store. Returns true if a purge happened.
//
// A missing stored fingerprint (first run) records the current one
// without purging.
func (g *EnvironmentGuard) Check(ctx context.Context) (purged bool, err error) {
	stored, err := g.store.Get(ctx, driven.KeyProviderFingerprint)
	if err != nil {
		return false, fmt.Errorf("read fingerprint: %w", err)
	}

	if stored == g.fingerprint {
		return false, nil
	}

	if stored != "" {
		logger.Info("identity environment changed, clearing stored credentials")
		if err := g.store.ClearAll(ctx, driven.KnownCredentialKeys); err != nil {
			return false, fmt.Errorf("purge credentials: %w", err)
		}
		purged = true
	}

	if err := g.store.Set(ctx, driven.KeyProviderFingerprint, g.fingerprint); err != nil {
		return purged, fmt.Errorf("record fingerprint: %w", err)
	}
	return purged, nil
}
