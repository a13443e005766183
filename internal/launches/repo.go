package launches

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a launches repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns launches soonest first. Dates are stored as YYYY-MM-DD
// strings, so lexicographic comparison orders them correctly.
func (r *repository) List(ctx context.Context, filters ListFilters) ([]models.Launch, error) {
	query := r.db.WithContext(ctx).Model(&models.Launch{})
	if filters.Brand != "" {
		query = query.Where("brand = ?", filters.Brand)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.FromDate != "" {
		query = query.Where("date >= ?", filters.FromDate)
	}

	var rows []models.Launch
	if err := query.Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Launch, error) {
	var launch models.Launch
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&launch).Error; err != nil {
		return nil, err
	}
	return &launch, nil
}

func (r *repository) DistinctBrands(ctx context.Context) ([]string, error) {
	var brands []string
	err := r.db.WithContext(ctx).
		Model(&models.Launch{}).
		Distinct().
		Order("brand ASC").
		Pluck("brand", &brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *repository) Create(ctx context.Context, launch *models.Launch) (*models.Launch, error) {
	if err := r.db.WithContext(ctx).Create(launch).Error; err != nil {
		return nil, err
	}
	return launch, nil
}

func (r *repository) Update(ctx context.Context, launch *models.Launch) error {
	return r.db.WithContext(ctx).Save(launch).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Launch{}, "id = ?", id).Error
}
