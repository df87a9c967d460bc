package api

import "net/http"

// BuildHeaders produces the outgoing header set for one request.
//
// Pure function: no storage reads, no side effects. The resolved token is
// passed in by the caller.
//
// Rules, in order:
//   - Content-Type defaults to application/json
//   - a non-empty token yields exactly one auth header, per strategy
//   - extra is merged last, so caller-supplied headers win on collision
func BuildHeaders(strategy Strategy, token string, extra map[string]string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")

	if token != "" {
		strategy.Apply(h, token)
	}

	for k, v := range extra {
		h.Set(k, v)
	}

	return h
}
