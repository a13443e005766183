package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Launch is an upcoming vehicle launch announcement.
type Launch struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Date          string    `gorm:"column:date;not null;index:launches_date_idx"`
	Brand         string    `gorm:"column:brand;not null"`
	Type          string    `gorm:"column:type;not null"`
	ExpectedPrice *int      `gorm:"column:expected_price"`
	Image         *string   `gorm:"column:image"`
	Description   *string   `gorm:"column:description"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns an app-side id so both postgres and sqlite work.
func (l *Launch) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
