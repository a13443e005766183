package alerts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a price-alert repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Replace removes any earlier alert by the same user for the same bike
// and inserts the new one, keeping the (user, bike) uniqueness without
// driver-specific upsert syntax.
func (r *repository) Replace(ctx context.Context, alert *models.PriceAlert) (*models.PriceAlert, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND bike_id = ?", alert.UserID, alert.BikeID).
			Delete(&models.PriceAlert{}).Error; err != nil {
			return err
		}
		return tx.Create(alert).Error
	})
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.PriceAlert, error) {
	var alert models.PriceAlert
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&alert).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PriceAlert, error) {
	var rows []models.PriceAlert
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PriceAlert{}, "id = ?", id).Error
}
