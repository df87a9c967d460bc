package driving

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// ResumeService manages uploaded resumes.
type ResumeService interface {
	// List returns all resumes for the current identity.
	List(ctx context.Context) ([]domain.Resume, error)

	// Get returns one resume by ID.
	Get(ctx context.Context, id int64) (*domain.Resume, error)

	// Upload stores a new resume. The file content must be non-empty.
	Upload(ctx context.Context, filename string, data []byte) (*domain.Resume, error)

	// Delete removes a resume.
	Delete(ctx context.Context, id int64) error

	// Export downloads a document as bytes in the requested format
	// (e.g., "pdf", "docx").
	Export(ctx context.Context, kind domain.ExportKind, id int64, format string) (*domain.Export, error)
}
