package used

import (
	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	"github.com/vahanbazar/vahanbazar-backend/pkg/pagination"
)

// ListFilters describe the browse filter knobs for used listings.
type ListFilters struct {
	Query    string
	Brand    string
	MinPrice *int
	MaxPrice *int
	Status   *enums.ListingStatus
}

// ListInput couples filters with cursor pagination for the browse endpoint.
type ListInput struct {
	Filters    ListFilters
	Pagination pagination.Params
}

// ListResult is one page of listings plus the cursor for the next page.
type ListResult struct {
	Items  []models.UsedListing `json:"items"`
	Cursor string               `json:"cursor,omitempty"`
}

// ListParams is the repository-level query shape after the service has
// resolved visibility and decoded the cursor.
type ListParams struct {
	Filters ListFilters
	Limit   int
	Cursor  *pagination.Cursor
}

// Actor identifies who is calling a listing operation.
type Actor struct {
	UserID uuid.UUID
	Role   enums.Role
}

// IsOwnerOrAdmin reports whether the actor may manage the given listing.
func (a Actor) IsOwnerOrAdmin(listing *models.UsedListing) bool {
	return a.UserID == listing.OwnerID || a.Role == enums.RoleAdmin
}

// CreateListingInput carries the seller-submitted fields for a new listing.
type CreateListingInput struct {
	Title        string
	Brand        string
	Model        *string
	Year         *int
	Price        int
	Kms          *int
	Condition    *string
	Location     *string
	Images       dbtypes.StringList
	Description  *string
	ContactPhone *string
	Actor        Actor
}

// UpdateListingInput carries a partial update; nil fields keep their stored value.
type UpdateListingInput struct {
	ID           uuid.UUID
	Title        *string
	Brand        *string
	Model        *string
	Year         *int
	Price        *int
	Kms          *int
	Condition    *string
	Location     *string
	Images       dbtypes.StringList
	Description  *string
	ContactPhone *string
	Actor        Actor
}
