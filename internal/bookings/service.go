package bookings

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/internal/catalog"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// Indian mobile numbers: ten digits starting 6 through 9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// Service defines the test-ride booking operations.
type Service interface {
	Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	ListForDealer(ctx context.Context, input ListInput) ([]models.Booking, error)
}

type service struct {
	repo  Repository
	bikes catalog.Repository
}

// NewService builds a bookings service with the required dependencies.
func NewService(repo Repository, bikes catalog.Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("bookings repository required")
	}
	if bikes == nil {
		return nil, fmt.Errorf("bike repository required")
	}
	return &service{repo: repo, bikes: bikes}, nil
}

// Create records a test-ride request after validating the contact
// details, the target bike, and that the date is not in the past.
func (s *service) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	name := strings.TrimSpace(input.UserName)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	if !phonePattern.MatchString(strings.TrimSpace(input.Phone)) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone must be a valid 10-digit mobile number")
	}
	if input.BikeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bike id required")
	}

	date, err := time.Parse(DateLayout, input.Date)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must be YYYY-MM-DD")
	}
	today := time.Now()
	todayFloor := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(todayFloor) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must be today or later")
	}

	if _, err := s.bikes.FindByID(ctx, input.BikeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "bike not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up bike")
	}

	booking := &models.Booking{
		UserName: name,
		Phone:    strings.TrimSpace(input.Phone),
		BikeID:   input.BikeID,
		Date:     input.Date,
		Status:   enums.BookingStatusPending,
	}
	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create booking")
	}
	return created, nil
}

// ListForDealer returns every booking, newest first.
func (s *service) ListForDealer(ctx context.Context, input ListInput) ([]models.Booking, error) {
	if !input.ActorRole.IsReviewer() {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "dealer or admin role required")
	}
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	return rows, nil
}
