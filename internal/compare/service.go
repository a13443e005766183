package compare

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/internal/catalog"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

// Service resolves a set of bike ids into a merged comparison table.
type Service interface {
	Compare(ctx context.Context, ids []uuid.UUID) (*Table, error)
}

type service struct {
	repo catalog.Repository
}

// NewService builds a comparison service over the catalog repository.
func NewService(repo catalog.Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// Compare loads the requested bikes, applying the same dedup and cap
// rules as the working set, and merges their specs.
func (s *service) Compare(ctx context.Context, ids []uuid.UUID) (*Table, error) {
	if len(ids) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one bike id required")
	}

	set := NewSet(ids...)

	bikes := make([]models.Bike, 0, set.Len())
	for _, id := range set.IDs() {
		bike, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bike not found").
					WithDetails(map[string]string{"id": id.String()})
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bike")
		}
		bikes = append(bikes, *bike)
	}

	table := Merge(bikes)
	return &table, nil
}
