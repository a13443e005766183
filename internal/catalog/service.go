package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

// Service defines catalog operations for public browsing and dealer management.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]models.Bike, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Bike, error)
	Brands(ctx context.Context) ([]string, error)
	FuelTypes(ctx context.Context) ([]string, error)
	Create(ctx context.Context, input CreateBikeInput) (*models.Bike, error)
	Update(ctx context.Context, input UpdateBikeInput) (*models.Bike, error)
	Delete(ctx context.Context, input DeleteBikeInput) error
}

type service struct {
	repo Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Bike, error) {
	bikes, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bikes")
	}
	return bikes, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Bike, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bike id required")
	}
	bike, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bike not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bike")
	}
	return bike, nil
}

func (s *service) Brands(ctx context.Context) ([]string, error) {
	brands, err := s.repo.DistinctBrands(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list brands")
	}
	return brands, nil
}

func (s *service) FuelTypes(ctx context.Context) ([]string, error) {
	fuels, err := s.repo.DistinctFuelTypes(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list fuel types")
	}
	return fuels, nil
}

func (s *service) Create(ctx context.Context, input CreateBikeInput) (*models.Bike, error) {
	if !input.ActorRole.IsReviewer() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "dealer or admin role required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	if strings.TrimSpace(input.Brand) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "brand required")
	}
	if input.Price < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
	}

	specs := input.Specs
	if specs == nil {
		specs = dbtypes.SpecMap{}
	}

	bike := &models.Bike{
		Name:     strings.TrimSpace(input.Name),
		Brand:    strings.TrimSpace(input.Brand),
		Price:    input.Price,
		FuelType: input.FuelType,
		Specs:    specs,
		Image:    input.Image,
	}
	created, err := s.repo.Create(ctx, bike)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create bike")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, input UpdateBikeInput) (*models.Bike, error) {
	if !input.ActorRole.IsReviewer() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "dealer or admin role required")
	}
	if input.ID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bike id required")
	}

	bike, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bike not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bike")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		bike.Name = strings.TrimSpace(*input.Name)
	}
	if input.Brand != nil {
		if strings.TrimSpace(*input.Brand) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "brand cannot be empty")
		}
		bike.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be non-negative")
		}
		bike.Price = *input.Price
	}
	if input.FuelType != nil {
		bike.FuelType = *input.FuelType
	}
	if input.Specs != nil {
		bike.Specs = input.Specs
	}
	if input.Image != nil {
		bike.Image = *input.Image
	}

	if err := s.repo.Update(ctx, bike); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update bike")
	}
	return bike, nil
}

func (s *service) Delete(ctx context.Context, input DeleteBikeInput) error {
	if !input.ActorRole.IsReviewer() {
		return pkgerrors.New(pkgerrors.CodeForbidden, "dealer or admin role required")
	}
	if input.ID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "bike id required")
	}
	if _, err := s.repo.FindByID(ctx, input.ID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return pkgerrors.New(pkgerrors.CodeNotFound, "bike not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bike")
	}
	if err := s.repo.Delete(ctx, input.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete bike")
	}
	return nil
}
