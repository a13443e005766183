package reviews

import (
	"github.com/google/uuid"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

// Actor identifies who is posting or deleting a review.
type Actor struct {
	UserID uuid.UUID
	Role   enums.Role
}

// PostReviewInput creates or replaces the caller's review of a bike.
type PostReviewInput struct {
	BikeID  uuid.UUID
	Rating  int
	Comment *string
	Actor   Actor
}

// RatingSummary aggregates a bike's reviews.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// BikeReviews is the list endpoint payload: the reviews newest first
// plus the aggregate summary.
type BikeReviews struct {
	Reviews []models.Review `json:"reviews"`
	Summary RatingSummary   `json:"summary"`
}
