package services

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
	"github.com/tailorkit/tailor-cli/internal/core/ports/driving"
)

// Ensure ApplicationService implements the interface.
var _ driving.ApplicationService = (*ApplicationService)(nil)

// ApplicationService manages tracked job applications.
type ApplicationService struct {
	api driven.BackendAPI
}

// NewApplicationService creates a new application service.
func NewApplicationService(api driven.BackendAPI) *ApplicationService {
	return &ApplicationService{api: api}
}

// List returns all tracked applications.
func (s *ApplicationService) List(ctx context.Context) ([]domain.Application, error) {
	return s.api.ListApplications(ctx)
}

// Create adds a tracked application.
func (s *ApplicationService) Create(ctx context.Context, app domain.Application) (*domain.Application, error) {
	if err := app.Validate(); err != nil {
		return nil, err
	}
	return s.api.CreateApplication(ctx, app)
}

// Update overwrites a tracked application. Last write wins on the backend.
func (s *ApplicationService) Update(ctx context.Context, app domain.Application) (*domain.Application, error) {
	if app.ID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := app.Validate(); err != nil {
		return nil, err
	}
	return s.api.UpdateApplication(ctx, app)
}

// Delete removes a tracked application.
func (s *ApplicationService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return s.api.DeleteApplication(ctx, id)
}
