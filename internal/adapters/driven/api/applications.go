package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// ListApplications returns all tracked applications.
func (c *Client) ListApplications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	err := c.do(ctx, call{
		op:     "list applications",
		method: http.MethodGet,
		path:   "/api/applications",
	}, &apps)
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// CreateApplication adds a tracked application.
func (c *Client) CreateApplication(ctx context.Context, app domain.Application) (*domain.Application, error) {
	if err := app.Validate(); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	var created domain.Application
	err := c.do(ctx, call{
		op:     "create application",
		method: http.MethodPost,
		path:   "/api/applications",
		body:   app,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateApplication overwrites a tracked application.
// Concurrent updates to the same record are last-write-wins on the backend.
func (c *Client) UpdateApplication(ctx context.Context, app domain.Application) (*domain.Application, error) {
	if app.ID <= 0 {
		return nil, fmt.Errorf("update application: %w", domain.ErrInvalidInput)
	}
	if err := app.Validate(); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	var updated domain.Application
	err := c.do(ctx, call{
		op:     "update application",
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/applications/%d", app.ID),
		body:   app,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteApplication removes a tracked application by ID.
func (c *Client) DeleteApplication(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("delete application: %w", domain.ErrInvalidInput)
	}

	return c.do(ctx, call{
		op:     "delete application",
		method: http.MethodDelete,
		path:   fmt.Sprintf("/api/applications/%d", id),
	}, nil)
}

// ExportDocument downloads a document as raw bytes with a filename hint.
func (c *Client) ExportDocument(ctx context.Context, kind domain.ExportKind, id int64, format string) (*domain.Export, error) {
	if !kind.IsValid() || id <= 0 {
		return nil, fmt.Errorf("export document: %w", domain.ErrInvalidInput)
	}

	query := url.Values{}
	if format != "" {
		query.Set("format", format)
	}

	return c.doBinary(ctx, call{
		op:     "export document",
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/export/%s/%d", kind, id),
		query:  query,
		// Exports are binary, not JSON.
		extraHeaders: map[string]string{"Accept": "*/*"},
	})
}
