package showrooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

// Service defines the showroom directory operations.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]models.Showroom, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Showroom, error)
}

type service struct {
	repo Repository
}

// NewService builds a showrooms service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("showrooms repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Showroom, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list showrooms")
	}
	if rows == nil {
		rows = []models.Showroom{}
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Showroom, error) {
	showroom, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "showroom not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up showroom")
	}
	return showroom, nil
}
