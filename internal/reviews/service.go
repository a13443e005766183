package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/internal/catalog"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

// Service defines the review operations.
type Service interface {
	Post(ctx context.Context, input PostReviewInput) (*models.Review, error)
	ListForBike(ctx context.Context, bikeID uuid.UUID) (*BikeReviews, error)
	Delete(ctx context.Context, id uuid.UUID, actor Actor) error
}

type service struct {
	repo  Repository
	bikes catalog.Repository
}

// NewService builds a reviews service with the required dependencies.
func NewService(repo Repository, bikes catalog.Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reviews repository required")
	}
	if bikes == nil {
		return nil, fmt.Errorf("bike repository required")
	}
	return &service{repo: repo, bikes: bikes}, nil
}

// Post creates the caller's review of a bike, replacing any earlier one
// so that each user holds at most one review per bike.
func (s *service) Post(ctx context.Context, input PostReviewInput) (*models.Review, error) {
	if input.Actor.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	if input.BikeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bike id required")
	}

	if _, err := s.bikes.FindByID(ctx, input.BikeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bike not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up bike")
	}

	review := &models.Review{
		BikeID:  input.BikeID,
		UserID:  input.Actor.UserID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	saved, err := s.repo.Replace(ctx, review)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save review")
	}
	return saved, nil
}

// ListForBike returns a bike's reviews newest first together with the
// average rating and review count.
func (s *service) ListForBike(ctx context.Context, bikeID uuid.UUID) (*BikeReviews, error) {
	if _, err := s.bikes.FindByID(ctx, bikeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bike not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up bike")
	}

	rows, err := s.repo.ListByBike(ctx, bikeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}
	summary, err := s.repo.Summary(ctx, bikeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "summarize reviews")
	}
	if rows == nil {
		rows = []models.Review{}
	}
	return &BikeReviews{Reviews: rows, Summary: *summary}, nil
}

// Delete removes a review. Authors may delete their own review, admins
// may delete any.
func (s *service) Delete(ctx context.Context, id uuid.UUID, actor Actor) error {
	if actor.UserID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up review")
	}
	if review.UserID != actor.UserID && actor.Role != enums.RoleAdmin {
		return pkgerrors.New(pkgerrors.CodeForbidden, "not the review author")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete review")
	}
	return nil
}
