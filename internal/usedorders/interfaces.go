package usedorders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// Repository exposes persistence helpers for used-bike orders.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.UsedOrder) (*models.UsedOrder, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.UsedOrder, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]OrderRow, error)
	ListAll(ctx context.Context) ([]OrderRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}
