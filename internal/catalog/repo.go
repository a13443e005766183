package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]models.Bike, error) {
	query := r.db.WithContext(ctx).Model(&models.Bike{})

	if brand := strings.TrimSpace(filters.Brand); brand != "" {
		query = query.Where("brand = ?", brand)
	}
	if fuel := strings.TrimSpace(filters.FuelType); fuel != "" {
		query = query.Where("fuel_type = ?", fuel)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if q := strings.TrimSpace(filters.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ?", like, like)
	}

	var bikes []models.Bike
	if err := query.Order("created_at ASC, id ASC").Find(&bikes).Error; err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Bike, error) {
	var bike models.Bike
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bike).Error; err != nil {
		return nil, err
	}
	return &bike, nil
}

// ListAll returns the full catalog in creation order. The recommendation
// scorer depends on this ordering for stable ties.
func (r *repository) ListAll(ctx context.Context) ([]models.Bike, error) {
	var bikes []models.Bike
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&bikes).Error; err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *repository) ListNewest(ctx context.Context, limit int) ([]models.Bike, error) {
	var bikes []models.Bike
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&bikes).Error
	if err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *repository) DistinctBrands(ctx context.Context) ([]string, error) {
	var brands []string
	err := r.db.WithContext(ctx).
		Model(&models.Bike{}).
		Distinct("brand").
		Order("brand ASC").
		Pluck("brand", &brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *repository) DistinctFuelTypes(ctx context.Context) ([]string, error) {
	var fuels []string
	err := r.db.WithContext(ctx).
		Model(&models.Bike{}).
		Distinct("fuel_type").
		Order("fuel_type ASC").
		Pluck("fuel_type", &fuels).Error
	if err != nil {
		return nil, err
	}
	return fuels, nil
}

func (r *repository) Create(ctx context.Context, bike *models.Bike) (*models.Bike, error) {
	if err := r.db.WithContext(ctx).Create(bike).Error; err != nil {
		return nil, err
	}
	return bike, nil
}

func (r *repository) Update(ctx context.Context, bike *models.Bike) error {
	return r.db.WithContext(ctx).Save(bike).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Bike{}).Error
}
