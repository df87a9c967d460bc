// Package api implements the typed HTTP client for the tailoring backend.
//
// Every endpoint method resolves the current credential through the session
// provider, builds headers through BuildHeaders, issues one HTTP call, and
// maps the outcome onto the error taxonomy in domain:
//
//   - transport failure          -> *domain.NetworkError
//   - non-2xx status             -> *domain.HTTPError
//   - malformed JSON             -> *domain.ParseError
//   - envelope success=false     -> *domain.AppError
//   - required credential absent -> domain.ErrUnauthenticated (no call made)
//
// The client never retries, never caches, and never logs token values.
package api
