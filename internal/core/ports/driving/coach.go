package driving

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// CoachService drives the career-coaching endpoints: progression paths and
// STAR-format behavioural stories.
type CoachService interface {
	// CareerPath suggests a progression from the current role to a target.
	CareerPath(ctx context.Context, currentRole, targetRole string) (*domain.CareerPath, error)

	// GenerateStory produces a STAR answer for a behavioural prompt.
	GenerateStory(ctx context.Context, prompt string) (*domain.StarStory, error)

	// ListStories returns previously generated stories.
	ListStories(ctx context.Context) ([]domain.StarStory, error)
}

// ResearchService drives the company-research endpoint.
type ResearchService interface {
	// Company produces a research brief for the named company.
	Company(ctx context.Context, name string) (*domain.CompanyResearch, error)
}
