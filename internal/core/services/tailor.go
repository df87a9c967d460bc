package services

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driving"
)

// Ensure TailorService implements the interface.
var _ driving.TailorService = (*TailorService)(nil)

// TailorService drives the AI generation endpoints that work from a resume
// and a job posting.
type TailorService struct {
	api driven.BackendAPI
}

// NewTailorService creates a new tailor service.
func NewTailorService(api driven.BackendAPI) *TailorService {
	return &TailorService{api: api}
}

// Tailor rewrites a resume for a job posting.
func (s *TailorService) Tailor(
	ctx context.Context,
	resumeID int64,
	job domain.JobPosting,
) (*domain.TailoredResume, error) {
	if resumeID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return s.api.TailorResume(ctx, resumeID, job)
}

// InterviewPrep generates interview questions for a posting.
func (s *TailorService) InterviewPrep(
	ctx context.Context,
	resumeID int64,
	job domain.JobPosting,
) (*domain.InterviewPrep, error) {
	if resumeID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return s.api.GenerateInterviewPrep(ctx, resumeID, job)
}

// CoverLetter generates a cover letter in the given tone.
func (s *TailorService) CoverLetter(
	ctx context.Context,
	resumeID int64,
	job domain.JobPosting,
	tone string,
) (*domain.CoverLetter, error) {
	if resumeID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return s.api.GenerateCoverLetter(ctx, resumeID, job, tone)
}

// ListCoverLetters returns previously generated cover letters.
func (s *TailorService) ListCoverLetters(ctx context.Context) ([]domain.CoverLetter, error) {
	return s.api.ListCoverLetters(ctx)
}
