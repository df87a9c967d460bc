package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
	"github.com/tailorkit/tailor-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.BackendAPI = (*Client)(nil)

// maxErrorBody caps how much of an error response body is kept for display.
const maxErrorBody = 512

// Config holds configuration for the backend API client.
type Config struct {
	// BaseURL is the backend base URL (required).
	BaseURL string

	// Strategy shapes the auth header (required).
	Strategy Strategy

	// Session resolves the current credential (required).
	Session driven.SessionProvider

	// Timeout is the per-request timeout (default: 60s, AI endpoints
	// are slow).
	Timeout time.Duration

	// RateLimit caps outgoing requests per second. 0 disables limiting.
	RateLimit int

	// HTTPClient overrides the transport. Used by tests.
	HTTPClient *http.Client
}

// Client is the typed HTTP client for the tailoring backend.
type Client struct {
	http     *http.Client
	baseURL  string
	strategy Strategy
	session  driven.SessionProvider
	limiter  *rate.Limiter
}

// New creates a backend API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	if cfg.Strategy == nil {
		return nil, fmt.Errorf("api: auth strategy is required")
	}
	if cfg.Session == nil {
		return nil, fmt.Errorf("api: session provider is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = domain.DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit)
	}

	return &Client{
		http:     httpClient,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		strategy: cfg.Strategy,
		session:  cfg.Session,
		limiter:  limiter,
	}, nil
}

// envelope is the backend's JSON response wrapper.
// success=false implies data is absent and error is human-readable.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// call describes one request to the backend.
type call struct {
	op           string
	method       string
	path         string
	query        url.Values
	body         any       // JSON-encoded when non-nil
	rawBody      io.Reader // used instead of body for uploads
	extraHeaders map[string]string
	noAuth       bool // endpoint works without a credential
}

// do executes a call and decodes the envelope's data into out (out may be
// nil for endpoints with no payload).
func (c *Client) do(ctx context.Context, req call, out any) error {
	resp, body, err := c.roundTrip(ctx, req)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.HTTPError{Op: req.op, Status: resp.StatusCode, Body: truncate(body)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &domain.ParseError{Op: req.op, Err: err}
	}

	// The backend reports business failures with HTTP 200 and
	// success=false. Status checks alone are not enough.
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request failed"
		}
		return &domain.AppError{Op: req.op, Message: msg}
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return &domain.ParseError{Op: req.op, Err: fmt.Errorf("envelope has no data")}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &domain.ParseError{Op: req.op, Err: err}
	}
	return nil
}

// doBinary executes a call expecting a raw byte payload instead of a JSON
// envelope. The filename hint comes from Content-Disposition.
func (c *Client) doBinary(ctx context.Context, req call) (*domain.Export, error) {
	resp, body, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.HTTPError{Op: req.op, Status: resp.StatusCode, Body: truncate(body)}
	}

	return &domain.Export{
		Filename:    dispositionFilename(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        body,
	}, nil
}

// roundTrip resolves the credential, builds the request, and performs the
// single HTTP exchange. Fails fast with ErrUnauthenticated before dialing
// when a required credential is absent.
func (c *Client) roundTrip(ctx context.Context, req call) (*http.Response, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, &domain.NetworkError{Op: req.op, Err: err}
		}
	}

	token := ""
	if !req.noAuth {
		t, err := c.session.GetToken(ctx)
		if err != nil {
			// Provider failures degrade to signed-out rather than surfacing
			// identity-backend errors on every call.
			logger.Debug("token resolution failed for %s: %v", req.op, err)
			t = ""
		}
		if t == "" {
			return nil, nil, fmt.Errorf("%s: %w", req.op, domain.ErrUnauthenticated)
		}
		token = t
	}

	var bodyReader io.Reader
	switch {
	case req.rawBody != nil:
		bodyReader = req.rawBody
	case req.body != nil:
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: marshal request: %w", req.op, err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: create request: %w", req.op, err)
	}
	httpReq.Header = BuildHeaders(c.strategy, token, req.extraHeaders)

	logger.Debug("%s %s", req.method, req.path)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, nil, &domain.NetworkError{Op: req.op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &domain.NetworkError{Op: req.op, Err: err}
	}

	return resp, body, nil
}

// Ping checks the backend is reachable. No authentication required.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, call{
		op:     "ping",
		method: http.MethodGet,
		path:   "/api/health",
		noAuth: true,
	}, nil)
}

// truncate bounds a response body for inclusion in an error.
func truncate(body []byte) string {
	s := string(body)
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}

// dispositionFilename extracts the filename hint from a
// Content-Disposition header value. Returns "" when absent or malformed.
func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
