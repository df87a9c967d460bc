package services

import (
	"context"
	"strings"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driving"
)

// Ensure the services implement their interfaces.
var (
	_ driving.CoachService    = (*CoachService)(nil)
	_ driving.ResearchService = (*ResearchService)(nil)
)

// CoachService drives the career-coaching endpoints.
type CoachService struct {
	api driven.BackendAPI
}

// NewCoachService creates a new coach service.
func NewCoachService(api driven.BackendAPI) *CoachService {
	return &CoachService{api: api}
}

// CareerPath suggests a progression from the current role to a target.
func (s *CoachService) CareerPath(ctx context.Context, currentRole, targetRole string) (*domain.CareerPath, error) {
	if strings.TrimSpace(currentRole) == "" || strings.TrimSpace(targetRole) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.api.GetCareerPath(ctx, currentRole, targetRole)
}

// GenerateStory produces a STAR answer for a behavioural prompt.
func (s *CoachService) GenerateStory(ctx context.Context, prompt string) (*domain.StarStory, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.api.GenerateStarStory(ctx, prompt)
}

// ListStories returns previously generated stories.
func (s *CoachService) ListStories(ctx context.Context) ([]domain.StarStory, error) {
	return s.api.ListStarStories(ctx)
}

// ResearchService drives the company-research endpoint.
type ResearchService struct {
	api driven.BackendAPI
}

// NewResearchService creates a new research service.
func NewResearchService(api driven.BackendAPI) *ResearchService {
	return &ResearchService{api: api}
}

// Company produces a research brief for the named company.
func (s *ResearchService) Company(ctx context.Context, name string) (*domain.CompanyResearch, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.api.ResearchCompany(ctx, name)
}
