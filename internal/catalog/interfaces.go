package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

// Repository defines the persistence surface for the bike catalog.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context, filters ListFilters) ([]models.Bike, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Bike, error)
	ListAll(ctx context.Context) ([]models.Bike, error)
	ListNewest(ctx context.Context, limit int) ([]models.Bike, error)
	DistinctBrands(ctx context.Context) ([]string, error)
	DistinctFuelTypes(ctx context.Context) ([]string, error)
	Create(ctx context.Context, bike *models.Bike) (*models.Bike, error)
	Update(ctx context.Context, bike *models.Bike) error
	Delete(ctx context.Context, id uuid.UUID) error
}
