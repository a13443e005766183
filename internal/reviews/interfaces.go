package reviews

import (
	"context"

	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

// Repository persists bike reviews.
type Repository interface {
	Replace(ctx context.Context, review *models.Review) (*models.Review, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListByBike(ctx context.Context, bikeID uuid.UUID) ([]models.Review, error)
	Summary(ctx context.Context, bikeID uuid.UUID) (*RatingSummary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
