package catalog

import (
	"github.com/google/uuid"

	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// ListFilters describe the supported filter knobs for the catalog browse endpoint.
type ListFilters struct {
	Brand    string `json:"brand,omitempty"`
	FuelType string `json:"fuel_type,omitempty"`
	MinPrice *int   `json:"min_price,omitempty"`
	MaxPrice *int   `json:"max_price,omitempty"`
	Query    string `json:"q,omitempty"`
}

// CreateBikeInput carries the fields a dealer submits for a new catalog entry.
type CreateBikeInput struct {
	Name      string
	Brand     string
	Price     int
	FuelType  enums.FuelType
	Specs     dbtypes.SpecMap
	Image     string
	ActorRole enums.Role
}

// UpdateBikeInput carries a partial update; nil fields keep their stored value.
type UpdateBikeInput struct {
	ID        uuid.UUID
	Name      *string
	Brand     *string
	Price     *int
	FuelType  *enums.FuelType
	Specs     dbtypes.SpecMap
	Image     *string
	ActorRole enums.Role
}

// DeleteBikeInput identifies the catalog entry to remove.
type DeleteBikeInput struct {
	ID        uuid.UUID
	ActorRole enums.Role
}
