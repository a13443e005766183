package showrooms

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

// NewRepository builds a showrooms repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List filters the directory. Brands are stored as a JSON string array
// in a text column, so the brand filter matches the quoted element
// inside the serialized list.
func (r *repository) List(ctx context.Context, filters ListFilters) ([]models.Showroom, error) {
	query := r.db.WithContext(ctx).Model(&models.Showroom{})
	if filters.Brand != "" {
		query = query.Where("brands LIKE ?", `%"`+filters.Brand+`"%`)
	}
	if filters.Location != "" {
		pattern := "%" + strings.ToLower(filters.Location) + "%"
		query = query.Where("LOWER(location) LIKE ?", pattern)
	}

	var rows []models.Showroom
	if err := query.Order("name ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Showroom, error) {
	var showroom models.Showroom
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&showroom).Error; err != nil {
		return nil, err
	}
	return &showroom, nil
}

func (r *repository) Create(ctx context.Context, showroom *models.Showroom) (*models.Showroom, error) {
	if err := r.db.WithContext(ctx).Create(showroom).Error; err != nil {
		return nil, err
	}
	return showroom, nil
}
