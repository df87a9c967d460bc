package driven

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// BackendAPI is the typed client surface for the tailoring backend.
// One method per endpoint; every method either returns a parsed result or
// one of the five error kinds in domain (NetworkError, HTTPError,
// ParseError, AppError, ErrUnauthenticated). Methods never retry, never
// cache, and never log token values.
type BackendAPI interface {
	// Ping checks the backend is reachable. No authentication required.
	Ping(ctx context.Context) error

	// Resumes.

	// ListResumes returns all resumes for the current identity.
	ListResumes(ctx context.Context) ([]domain.Resume, error)
	// GetResume returns one resume by ID (id > 0).
	GetResume(ctx context.Context, id int64) (*domain.Resume, error)
	// UploadResume uploads a resume file. The payload must be non-empty.
	UploadResume(ctx context.Context, filename string, data []byte) (*domain.Resume, error)
	// DeleteResume removes a resume by ID (id > 0).
	DeleteResume(ctx context.Context, id int64) error

	// AI generation.

	// TailorResume rewrites a resume for a job posting. Slow endpoint.
	TailorResume(ctx context.Context, resumeID int64, job domain.JobPosting) (*domain.TailoredResume, error)
	// GenerateInterviewPrep produces interview questions for a posting.
	GenerateInterviewPrep(ctx context.Context, resumeID int64, job domain.JobPosting) (*domain.InterviewPrep, error)
	// GenerateCoverLetter writes a cover letter in the given tone.
	GenerateCoverLetter(ctx context.Context, resumeID int64, job domain.JobPosting, tone string) (*domain.CoverLetter, error)
	// ListCoverLetters returns previously generated cover letters.
	ListCoverLetters(ctx context.Context) ([]domain.CoverLetter, error)
	// GetCareerPath suggests a progression between two roles.
	GetCareerPath(ctx context.Context, currentRole, targetRole string) (*domain.CareerPath, error)
	// GenerateStarStory produces a STAR answer for a behavioural prompt.
	GenerateStarStory(ctx context.Context, prompt string) (*domain.StarStory, error)
	// ListStarStories returns previously generated stories.
	ListStarStories(ctx context.Context) ([]domain.StarStory, error)
	// ResearchCompany produces a research brief for a company.
	ResearchCompany(ctx context.Context, company string) (*domain.CompanyResearch, error)

	// Applications.

	// ListApplications returns all tracked applications.
	ListApplications(ctx context.Context) ([]domain.Application, error)
	// CreateApplication adds a tracked application.
	CreateApplication(ctx context.Context, app domain.Application) (*domain.Application, error)
	// UpdateApplication overwrites a tracked application (app.ID > 0).
	// Concurrent updates to the same record are last-write-wins.
	UpdateApplication(ctx context.Context, app domain.Application) (*domain.Application, error)
	// DeleteApplication removes a tracked application by ID (id > 0).
	DeleteApplication(ctx context.Context, id int64) error

	// Binary export.

	// ExportDocument downloads a document as raw bytes with a filename hint
	// taken from the Content-Disposition header.
	ExportDocument(ctx context.Context, kind domain.ExportKind, id int64, format string) (*domain.Export, error)
}
