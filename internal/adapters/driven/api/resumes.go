package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// ListResumes returns all resumes for the current identity.
func (c *Client) ListResumes(ctx context.Context) ([]domain.Resume, error) {
	var resumes []domain.Resume
	err := c.do(ctx, call{
		op:     "list resumes",
		method: http.MethodGet,
		path:   "/api/resumes",
	}, &resumes)
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

// GetResume returns one resume by ID.
func (c *Client) GetResume(ctx context.Context, id int64) (*domain.Resume, error) {
	if id <= 0 {
		return nil, fmt.Errorf("get resume: %w", domain.ErrInvalidInput)
	}

	var resume domain.Resume
	err := c.do(ctx, call{
		op:     "get resume",
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/resumes/%d", id),
	}, &resume)
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// UploadResume uploads a resume file as multipart form data.
func (c *Client) UploadResume(ctx context.Context, filename string, data []byte) (*domain.Resume, error) {
	if filename == "" || len(data) == 0 {
		return nil, fmt.Errorf("upload resume: %w", domain.ErrInvalidInput)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("upload resume: create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("upload resume: write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("upload resume: close form: %w", err)
	}

	var resume domain.Resume
	err = c.do(ctx, call{
		op:      "upload resume",
		method:  http.MethodPost,
		path:    "/api/resumes/upload",
		rawBody: &buf,
		// Extra headers win over the JSON default, so the multipart
		// boundary survives.
		extraHeaders: map[string]string{"Content-Type": writer.FormDataContentType()},
	}, &resume)
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// DeleteResume removes a resume by ID.
func (c *Client) DeleteResume(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("delete resume: %w", domain.ErrInvalidInput)
	}

	return c.do(ctx, call{
		op:     "delete resume",
		method: http.MethodDelete,
		path:   fmt.Sprintf("/api/resumes/%d", id),
	}, nil)
}
