package bookings

import (
	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// CreateBookingInput captures a test-ride request. Bookings are open to
// anonymous visitors, so there is no actor on creation.
type CreateBookingInput struct {
	UserName string
	Phone    string
	BikeID   uuid.UUID
	Date     string
}

// ListInput scopes the dealer booking overview.
type ListInput struct {
	ActorRole enums.Role
}
