package showrooms

import (
	"context"

	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

// ListFilters narrows the showroom directory.
type ListFilters struct {
	Brand    string
	Location string
}

// Repository persists showrooms.
type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]models.Showroom, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Showroom, error)
	Create(ctx context.Context, showroom *models.Showroom) (*models.Showroom, error)
}
