package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceAlert asks to be told when a bike's price drops by a threshold
// percentage. One per (user, bike); saving again replaces the old one.
type PriceAlert struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:price_alerts_user_id_idx;uniqueIndex:price_alerts_user_bike_key"`
	BikeID           uuid.UUID `gorm:"column:bike_id;type:uuid;not null;uniqueIndex:price_alerts_user_bike_key"`
	ThresholdPercent int       `gorm:"column:threshold_percent;not null;default:10"`
	Active           bool      `gorm:"column:active;not null;default:true"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

// BeforeCreate assigns an app-side id so both postgres and sqlite work.
func (a *PriceAlert) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
