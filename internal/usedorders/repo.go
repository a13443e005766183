package usedorders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *models.UsedOrder) (*models.UsedOrder, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.UsedOrder, error) {
	var order models.UsedOrder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

const orderRowSelect = `used_orders.id, used_orders.used_id, used_orders.buyer_id,
used_orders.buyer_name, used_orders.buyer_phone, used_orders.price_at_order,
used_orders.status, used_orders.created_at,
used_listings.title AS listing_title, used_listings.brand AS listing_brand,
used_listings.model AS listing_model, used_listings.owner_id AS seller_id`

func (r *repository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]OrderRow, error) {
	var rows []OrderRow
	err := r.db.WithContext(ctx).
		Model(&models.UsedOrder{}).
		Select(orderRowSelect).
		Joins("LEFT JOIN used_listings ON used_listings.id = used_orders.used_id").
		Where("used_orders.buyer_id = ?", buyerID).
		Order("used_orders.created_at DESC, used_orders.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListAll(ctx context.Context) ([]OrderRow, error) {
	var rows []OrderRow
	err := r.db.WithContext(ctx).
		Model(&models.UsedOrder{}).
		Select(orderRowSelect).
		Joins("LEFT JOIN used_listings ON used_listings.id = used_orders.used_id").
		Order("used_orders.created_at DESC, used_orders.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.UsedOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}
