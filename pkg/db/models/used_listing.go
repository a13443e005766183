package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// UsedListing is a seller-submitted offer for a pre-owned bike.
// Lifecycle: pending (initial) -> approved -> sold.
type UsedListing struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	Title        string              `gorm:"column:title;not null"`
	Brand        string              `gorm:"column:brand;not null;index:used_listings_brand_idx"`
	Model        *string             `gorm:"column:model"`
	Year         *int                `gorm:"column:year"`
	Price        int                 `gorm:"column:price;not null"`
	Kms          *int                `gorm:"column:kms"`
	Condition    *string             `gorm:"column:condition"`
	Location     *string             `gorm:"column:location"`
	Images       dbtypes.StringList  `gorm:"column:images;type:text"`
	Description  *string             `gorm:"column:description"`
	ContactPhone *string             `gorm:"column:contact_phone"`
	Status       enums.ListingStatus `gorm:"column:status;not null;default:pending;index:used_listings_status_idx"`
	OwnerID      uuid.UUID           `gorm:"column:owner_id;type:uuid;not null;index:used_listings_owner_id_idx"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns an app-side id so both postgres and sqlite work.
func (l *UsedListing) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
