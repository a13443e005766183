package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// UsedOrder records a buyer's purchase intent against an approved
// listing. PriceAtOrder snapshots the listing price at creation and is
// never recomputed, even if the listing price changes later.
type UsedOrder struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	UsedID       uuid.UUID         `gorm:"column:used_id;type:uuid;not null;index:used_orders_used_id_idx"`
	BuyerID      uuid.UUID         `gorm:"column:buyer_id;type:uuid;not null;index:used_orders_buyer_id_idx"`
	BuyerName    string            `gorm:"column:buyer_name;not null"`
	BuyerPhone   string            `gorm:"column:buyer_phone;not null"`
	PriceAtOrder int               `gorm:"column:price_at_order;not null"`
	Status       enums.OrderStatus `gorm:"column:status;not null;default:pending"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns an app-side id so both postgres and sqlite work.
func (o *UsedOrder) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
