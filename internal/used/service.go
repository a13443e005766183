package used

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	dbtypes "github.com/vahanbazar/vahanbazar-backend/pkg/db/types"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
	"github.com/vahanbazar/vahanbazar-backend/pkg/pagination"
)

// Service defines the used-listing lifecycle operations.
type Service interface {
	Create(ctx context.Context, input CreateListingInput) (*models.UsedListing, error)
	Get(ctx context.Context, id uuid.UUID, actor *Actor) (*models.UsedListing, error)
	List(ctx context.Context, input ListInput, actor *Actor) (*ListResult, error)
	ListMine(ctx context.Context, actor Actor) ([]models.UsedListing, error)
	Update(ctx context.Context, input UpdateListingInput) (*models.UsedListing, error)
	Approve(ctx context.Context, id uuid.UUID, actor Actor) (*models.UsedListing, error)
	MarkSold(ctx context.Context, id uuid.UUID, actor Actor) (*models.UsedListing, error)
	Delete(ctx context.Context, id uuid.UUID, actor Actor) error
}

type service struct {
	repo Repository
}

// NewService builds a used-listing service with the required dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("used listing repository required")
	}
	return &service{repo: repo}, nil
}

// Create stores a new listing. The listing always starts pending no
// matter what the caller sends, and the caller becomes the owner.
func (s *service) Create(ctx context.Context, input CreateListingInput) (*models.UsedListing, error) {
	if input.Actor.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title required")
	}
	if strings.TrimSpace(input.Brand) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "brand required")
	}
	if input.Price <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}

	images := input.Images
	if images == nil {
		images = dbtypes.StringList{}
	}

	listing := &models.UsedListing{
		Title:        strings.TrimSpace(input.Title),
		Brand:        strings.TrimSpace(input.Brand),
		Model:        input.Model,
		Year:         input.Year,
		Price:        input.Price,
		Kms:          input.Kms,
		Condition:    input.Condition,
		Location:     input.Location,
		Images:       images,
		Description:  input.Description,
		ContactPhone: input.ContactPhone,
		Status:       enums.ListingStatusPending,
		OwnerID:      input.Actor.UserID,
	}
	created, err := s.repo.Create(ctx, listing)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create listing")
	}
	return created, nil
}

// Get applies the visibility rule: approved listings are public, while
// pending and sold ones are visible only to their owner or an admin.
func (s *service) Get(ctx context.Context, id uuid.UUID, actor *Actor) (*models.UsedListing, error) {
	listing, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.Status == enums.ListingStatusApproved {
		return listing, nil
	}
	if actor != nil && actor.IsOwnerOrAdmin(listing) {
		return listing, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
}

// List browses listings with filters and cursor pagination. Callers
// without a reviewer role only ever see approved listings.
func (s *service) List(ctx context.Context, input ListInput, actor *Actor) (*ListResult, error) {
	params := ListParams{
		Filters: input.Filters,
		Limit:   input.Pagination.Limit,
	}

	if actor == nil || !actor.Role.IsReviewer() {
		approved := enums.ListingStatusApproved
		params.Filters.Status = &approved
	} else if params.Filters.Status != nil && !params.Filters.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid listing status filter")
	}

	if input.Pagination.Cursor != "" {
		cursor, err := pagination.ParseCursor(input.Pagination.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		params.Cursor = cursor
	}

	rows, next, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list listings")
	}

	cursor := ""
	if next != nil {
		cursor = pagination.EncodeCursor(*next)
	}
	return &ListResult{Items: rows, Cursor: cursor}, nil
}

func (s *service) ListMine(ctx context.Context, actor Actor) ([]models.UsedListing, error) {
	if actor.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	listings, err := s.repo.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list own listings")
	}
	return listings, nil
}

// Update applies a partial edit. Sold listings reject edits for every
// role, including the owner and admins.
func (s *service) Update(ctx context.Context, input UpdateListingInput) (*models.UsedListing, error) {
	listing, err := s.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !input.Actor.IsOwnerOrAdmin(listing) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "listing does not belong to caller")
	}
	if listing.Status == enums.ListingStatusSold {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidState, "cannot update sold listing")
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "title cannot be empty")
		}
		listing.Title = strings.TrimSpace(*input.Title)
	}
	if input.Brand != nil {
		if strings.TrimSpace(*input.Brand) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "brand cannot be empty")
		}
		listing.Brand = strings.TrimSpace(*input.Brand)
	}
	if input.Model != nil {
		listing.Model = input.Model
	}
	if input.Year != nil {
		listing.Year = input.Year
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
		}
		listing.Price = *input.Price
	}
	if input.Kms != nil {
		listing.Kms = input.Kms
	}
	if input.Condition != nil {
		listing.Condition = input.Condition
	}
	if input.Location != nil {
		listing.Location = input.Location
	}
	if input.Images != nil {
		listing.Images = input.Images
	}
	if input.Description != nil {
		listing.Description = input.Description
	}
	if input.ContactPhone != nil {
		listing.ContactPhone = input.ContactPhone
	}

	if err := s.repo.Save(ctx, listing); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update listing")
	}
	return listing, nil
}

// Approve marks the listing approved. Reviewer only. There is no guard
// on the current status: approving a sold listing re-opens it, which the
// public marketplace treats as a moderation override.
func (s *service) Approve(ctx context.Context, id uuid.UUID, actor Actor) (*models.UsedListing, error) {
	if !actor.Role.IsReviewer() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "dealer or admin role required")
	}
	listing, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, listing.ID, enums.ListingStatusApproved); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "approve listing")
	}
	listing.Status = enums.ListingStatusApproved
	return listing, nil
}

// MarkSold transitions the listing to sold from any state. Calling it
// on an already-sold listing is a no-op, not an error.
func (s *service) MarkSold(ctx context.Context, id uuid.UUID, actor Actor) (*models.UsedListing, error) {
	listing, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsOwnerOrAdmin(listing) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "listing does not belong to caller")
	}
	if listing.Status == enums.ListingStatusSold {
		return listing, nil
	}
	if err := s.repo.UpdateStatus(ctx, listing.ID, enums.ListingStatusSold); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark listing sold")
	}
	listing.Status = enums.ListingStatusSold
	return listing, nil
}

// Delete removes the listing in any state. Orders that reference it keep
// their snapshot and are left in place.
func (s *service) Delete(ctx context.Context, id uuid.UUID, actor Actor) error {
	listing, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsOwnerOrAdmin(listing) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "listing does not belong to caller")
	}
	if err := s.repo.Delete(ctx, listing.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete listing")
	}
	return nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.UsedListing, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "listing id required")
	}
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load listing")
	}
	return listing, nil
}
