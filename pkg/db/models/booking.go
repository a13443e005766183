package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// Booking is a test-ride reservation against a catalog bike.
type Booking struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	UserName  string              `gorm:"column:user_name;not null"`
	Phone     string              `gorm:"column:phone;not null"`
	BikeID    uuid.UUID           `gorm:"column:bike_id;type:uuid;not null;index:bookings_bike_id_idx"`
	Date      string              `gorm:"column:date;not null"`
	Status    enums.BookingStatus `gorm:"column:status;not null;default:pending"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
}

// BeforeCreate assigns an app-side id so both postgres and sqlite work.
func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
