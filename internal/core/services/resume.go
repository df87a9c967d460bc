package services

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driving"
)

// Ensure ResumeService implements the interface.
var _ driving.ResumeService = (*ResumeService)(nil)

// ResumeService manages uploaded resumes.
type ResumeService struct {
	api driven.BackendAPI
}

// NewResumeService creates a new resume service.
func NewResumeService(api driven.BackendAPI) *ResumeService {
	return &ResumeService{api: api}
}

// List returns all resumes for the current identity.
func (s *ResumeService) List(ctx context.Context) ([]domain.Resume, error) {
	return s.api.ListResumes(ctx)
}

// Get returns one resume by ID.
func (s *ResumeService) Get(ctx context.Context, id int64) (*domain.Resume, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.api.GetResume(ctx, id)
}

// Upload stores a new resume.
func (s *ResumeService) Upload(ctx context.Context, filename string, data []byte) (*domain.Resume, error) {
	if filename == "" || len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.api.UploadResume(ctx, filename, data)
}

// Delete removes a resume.
func (s *ResumeService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return s.api.DeleteResume(ctx, id)
}

// Export downloads a document as bytes in the requested format.
func (s *ResumeService) Export(
	ctx context.Context,
	kind domain.ExportKind,
	id int64,
	format string,
) (*domain.Export, error) {
	if !kind.IsValid() || id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return s.api.ExportDocument(ctx, kind, id, format)
}
