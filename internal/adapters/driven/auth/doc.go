// Package auth provides session-provider adapters for the identity layer.
//
// Two credential styles exist, selected once at boot:
//
//   - BearerProvider wraps an OIDC identity provider and serves signed JWTs,
//     refreshing them before expiry.
//   - SessionUUIDProvider serves a client-generated session UUID for legacy
//     deployments without a real identity provider.
//
// Both notify subscribers synchronously on every session state transition.
package auth
