package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

// Repository persists test-ride bookings.
type Repository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}
