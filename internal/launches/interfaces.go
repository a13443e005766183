package launches

import (
	"context"

	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

// Repository persists launch announcements.
type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]models.Launch, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Launch, error)
	DistinctBrands(ctx context.Context) ([]string, error)
	Create(ctx context.Context, launch *models.Launch) (*models.Launch, error)
	Update(ctx context.Context, launch *models.Launch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
