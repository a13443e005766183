package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// Bike is a new-vehicle catalog entry managed by dealers.
type Bike struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	Brand     string          `gorm:"column:brand;not null;index:bikes_brand_idx"`
	Price     int             `gorm:"column:price;not null"`
	FuelType  enums.FuelType  `gorm:"column:fuel_type;not null"`
	Specs     dbtypes.SpecMap `gorm:"column:specs;type:text;not null"`
	Image     string          `gorm:"column:image;not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns an app-side id so both postgres and sqlite work.
func (b *Bike) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
