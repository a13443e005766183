package used

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	"github.com/vahanbazar/vahanbazar-backend/pkg/pagination"
)

// Repository exposes persistence helpers for used-bike listings.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, listing *models.UsedListing) (*models.UsedListing, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.UsedListing, error)
	Save(ctx context.Context, listing *models.UsedListing) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ListingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params ListParams) ([]models.UsedListing, *pagination.Cursor, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.UsedListing, error)
}
