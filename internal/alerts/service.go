package alerts

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

// DefaultThresholdPercent applies when the caller does not request a
// specific price-drop threshold.
const DefaultThresholdPercent = 10

// Actor identifies who owns the alert being managed.
type Actor struct {
	UserID uuid.UUID
	Role   enums.Role
}

// SaveAlertInput creates or replaces the caller's alert for a bike.
type SaveAlertInput struct {
	BikeID           uuid.UUID
	ThresholdPercent int
	Actor            Actor
}

// Service defines the price-alert operations.
type Service interface {
	Save(ctx context.Context, input SaveAlertInput) (*models.PriceAlert, error)
	ListMine(ctx context.Context, actor Actor) ([]models.PriceAlert, error)
	Delete(ctx context.Context, id uuid.UUID, actor Actor) error
}

type service struct {
	repo  Repository
	bikes catalog.Repository
}

// NewService builds a price-alert service with the required dependencies.
func NewService(repo Repository, bikes catalog.Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("alerts repository required")
	}
	if bikes == nil {
		return nil, fmt.Errorf("bike repository required")
	}
	return &service{repo: repo, bikes: bikes}, nil
}

// Save creates the caller's alert for a bike, replacing any earlier
// one. A zero threshold falls back to the default.
func (s *service) Save(ctx context.Context, input SaveAlertInput) (*models.PriceAlert, error) {
	if input.Actor.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if input.BikeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bike id required")
	}
	threshold := input.ThresholdPercent
	if threshold == 0 {
		threshold = DefaultThresholdPercent
	}
	if threshold < 1 || threshold > 100 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "threshold must be between 1 and 100 percent")
	}

	if _, err := s.bikes.FindByID(ctx, input.BikeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bike not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up bike")
	}

	alert := &models.PriceAlert{
		UserID:           input.Actor.UserID,
		BikeID:           input.BikeID,
		ThresholdPercent: threshold,
		Active:           true,
	}
	saved, err := s.repo.Replace(ctx, alert)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save alert")
	}
	return saved, nil
}

// ListMine returns the caller's alerts, newest first.
func (s *service) ListMine(ctx context.Context, actor Actor) ([]models.PriceAlert, error) {
	if actor.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	rows, err := s.repo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list alerts")
	}
	if rows == nil {
		rows = []models.PriceAlert{}
	}
	return rows, nil
}

// Delete removes an alert. Owners may delete their own, admins any.
func (s *service) Delete(ctx context.Context, id uuid.UUID, actor Actor) error {
	if actor.UserID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	alert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "alert not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up alert")
	}
	if alert.UserID != actor.UserID && actor.Role != enums.RoleAdmin {
		return pkgerrors.New(pkgerrors.CodeForbidden, "not the alert owner")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete alert")
	}
	return nil
}
