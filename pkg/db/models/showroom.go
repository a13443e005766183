package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
)

// Showroom is a physical dealership carrying one or more brands.
type Showroom struct {
	ID        uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	Name      string             `gorm:"column:name;not null"`
	Location  string             `gorm:"column:location;not null"`
	Brands    dbtypes.StringList `gorm:"column:brands;type:text;not null"`
	Phone     *string            `gorm:"column:phone"`
	Address   *string            `gorm:"column:address"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
}

// BeforeCreate assigns an app-side id so both postgres and sqlite work.
func (s *Showroom) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
