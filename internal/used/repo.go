package used

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	"github.com/vahanbazar/vahanbazar-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a used-listing repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, listing *models.UsedListing) (*models.UsedListing, error) {
	if err := r.db.WithContext(ctx).Create(listing).Error; err != nil {
		return nil, err
	}
	return listing, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.UsedListing, error) {
	var listing models.UsedListing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *repository) Save(ctx context.Context, listing *models.UsedListing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ListingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.UsedListing{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UsedListing{}).Error
}

func (r *repository) List(ctx context.Context, params ListParams) ([]models.UsedListing, *pagination.Cursor, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)

	query := r.db.WithContext(ctx).Model(&models.UsedListing{})
	if brand := strings.TrimSpace(params.Filters.Brand); brand != "" {
		query = query.Where("brand = ?", brand)
	}
	if params.Filters.MinPrice != nil {
		query = query.Where("price >= ?", *params.Filters.MinPrice)
	}
	if params.Filters.MaxPrice != nil {
		query = query.Where("price <= ?", *params.Filters.MaxPrice)
	}
	if params.Filters.Status != nil {
		query = query.Where("status = ?", *params.Filters.Status)
	}
	if q := strings.TrimSpace(params.Filters.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(brand) LIKE ? OR LOWER(COALESCE(model, '')) LIKE ?", like, like, like)
	}
	if params.Cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", params.Cursor.CreatedAt, params.Cursor.ID)
	}

	var listings []models.UsedListing
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&listings).Error; err != nil {
		return nil, nil, err
	}

	if len(listings) > normalized {
		// The cursor marks the last row handed out; the next query's
		// strict comparison resumes immediately after it.
		listings = listings[:normalized]
		last := listings[normalized-1]
		return listings, &pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}, nil
	}
	return listings, nil, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.UsedListing, error) {
	var listings []models.UsedListing
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}
