package driving

import (
	"context"

	"github.com/tailorkit/tailor-cli/internal/core/domain"
)

// ApplicationService manages tracked job applications.
//
// The backend applies last-write-wins for concurrent updates to the same
// record; this layer adds no deduplication or locking.
type ApplicationService interface {
	// List returns all tracked applications.
	List(ctx context.Context) ([]domain.Application, error)

	// Create adds a tracked application.
	Create(ctx context.Context, app domain.Application) (*domain.Application, error)

	// Update overwrites a tracked application.
	Update(ctx context.Context, app domain.Application) (*domain.Application, error)

	// Delete removes a tracked application.
	Delete(ctx context.Context, id int64) error
}
