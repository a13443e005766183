package launches

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

// DateLayout is the wire format for launch dates.
const DateLayout = "2006-01-02"

// Service defines the launch catalog operations.
type Service interface {
	ListUpcoming(ctx context.Context, filters ListFilters) ([]models.Launch, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Launch, error)
	Brands(ctx context.Context) ([]string, error)
	Create(ctx context.Context, input CreateLaunchInput) (*models.Launch, error)
	Update(ctx context.Context, input UpdateLaunchInput) (*models.Launch, error)
	Delete(ctx context.Context, id uuid.UUID, actorRole enums.Role) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a launches service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("launches repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// ListUpcoming returns launches dated today or later, soonest first.
// The FromDate filter is always overwritten with today.
func (s *service) ListUpcoming(ctx context.Context, filters ListFilters) ([]models.Launch, error) {
	filters.FromDate = s.now().Format(DateLayout)
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list launches")
	}
	if rows == nil {
		rows = []models.Launch{}
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Launch, error) {
	launch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "launch not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up launch")
	}
	return launch, nil
}

func (s *service) Brands(ctx context.Context) ([]string, error) {
	brands, err := s.repo.DistinctBrands(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list launch brands")
	}
	if brands == nil {
		brands = []string{}
	}
	return brands, nil
}

// Create adds a launch announcement. Dealer or admin only.
func (s *service) Create(ctx context.Context, input CreateLaunchInput) (*models.Launch, error) {
	if !input.ActorRole.IsReviewer() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "dealer or admin role required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	if strings.TrimSpace(input.Brand) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "brand required")
	}
	if strings.TrimSpace(input.Type) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "type required")
	}
	if _, err := time.Parse(DateLayout, input.Date); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must be YYYY-MM-DD")
	}
	if input.ExpectedPrice != nil && *input.ExpectedPrice < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "expected price must be non-negative")
	}

	launch := &models.Launch{
		Name:          strings.TrimSpace(input.Name),
		Date:          input.Date,
		Brand:         strings.TrimSpace(input.Brand),
		Type:          strings.TrimSpace(input.Type),
		ExpectedPrice: input.ExpectedPrice,
		Image:         input.Image,
		Description:   input.Description,
	}
	created, err := s.repo.Create(ctx, launch)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create launch")
	}
	return created, nil
}

// Update applies a partial update to a launch. Dealer or admin only.
func (s *service) Update(ctx context.Context, input UpdateLaunchInput) (*models.Launch, error) {
	if !input.ActorRole.IsReviewer() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "dealer or admin role required")
	}
	launch, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "launch not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up launch")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
		}
		launch.Name = strings.TrimSpace(*input.Name)
	}
	if input.Date != nil {
		if _, err := time.Parse(DateLayout, *input.Date); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must be YYYY-MM-DD")
		}
		launch.Date = *input.Date
	}
	if input.Brand != nil {
		if strings.TrimSpace(*input.Brand) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "brand required")
		}
		launch.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Type != nil {
		if strings.TrimSpace(*input.Type) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "type required")
		}
		launch.Type = strings.TrimSpace(*input.Type)
	}
	if input.ExpectedPrice != nil {
		if *input.ExpectedPrice < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "expected price must be non-negative")
		}
		launch.ExpectedPrice = input.ExpectedPrice
	}
	if input.Image != nil {
		launch.Image = input.Image
	}
	if input.Description != nil {
		launch.Description = input.Description
	}

	if err := s.repo.Update(ctx, launch); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update launch")
	}
	return launch, nil
}

// Delete removes a launch announcement. Dealer or admin only.
func (s *service) Delete(ctx context.Context, id uuid.UUID, actorRole enums.Role) error {
	if !actorRole.IsReviewer() {
		return pkgerrors.New(pkgerrors.CodeForbidden, "dealer or admin role required")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "launch not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up launch")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete launch")
	}
	return nil
}
