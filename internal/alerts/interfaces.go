package alerts

import (
	"context"

	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

// Repository persists price alerts.
type Repository interface {
	Replace(ctx context.Context, alert *models.PriceAlert) (*models.PriceAlert, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.PriceAlert, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PriceAlert, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
