package driving

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// TailorService drives the AI generation endpoints that work from a resume
// and a job posting.
type TailorService interface {
	// Tailor rewrites a resume for a job posting.
	Tailor(ctx context.Context, resumeID int64, job domain.JobPosting) (*domain.TailoredResume, error)

	// InterviewPrep generates interview questions for a posting.
	InterviewPrep(ctx context.Context, resumeID int64, job domain.JobPosting) (*domain.InterviewPrep, error)

	// CoverLetter generates a cover letter in the given tone.
	// An empty tone uses the backend default.
	CoverLetter(ctx context.Context, resumeID int64, job domain.JobPosting, tone string) (*domain.CoverLetter, error)

	// ListCoverLetters returns previously generated cover letters.
	ListCoverLetters(ctx context.Context) ([]domain.CoverLetter, error)
}
