package launches

import (
	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// ListFilters narrows the upcoming-launch browse. FromDate is set by
// the service so only future launches come back.
type ListFilters struct {
	Brand    string
	Type     string
	FromDate string
}

// CreateLaunchInput is the dealer-facing creation payload.
type CreateLaunchInput struct {
	Name          string
	Date          string
	Brand         string
	Type          string
	ExpectedPrice *int
	Image         *string
	Description   *string
	ActorRole     enums.Role
}

// UpdateLaunchInput applies a partial update. Nil fields keep their
// stored values.
type UpdateLaunchInput struct {
	ID            uuid.UUID
	Name          *string
	Date          *string
	Brand         *string
	Type          *string
	ExpectedPrice *int
	Image         *string
	Description   *string
	ActorRole     enums.Role
}
