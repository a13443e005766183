package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/internal/catalog"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

type stubBookingRepo struct {
	bookings []models.Booking
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	s.bookings = append(s.bookings, *booking)
	return booking, nil
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return &s.bookings[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.bookings, nil
}

type stubBikeSource struct {
	bikes map[uuid.UUID]*models.Bike
}

func (s *stubBikeSource) WithTx(tx *gorm.DB) catalog.Repository { return s }

func (s *stubBikeSource) FindByID(ctx context.Context, id uuid.UUID) (*models.Bike, error) {
	if b, ok := s.bikes[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubBikeSource) List(ctx context.Context, filters catalog.ListFilters) ([]models.Bike, error) {
	return nil, nil
}
func (s *stubBikeSource) ListAll(ctx context.Context) ([]models.Bike, error) { return nil, nil }
func (s *stubBikeSource) ListNewest(ctx context.Context, limit int) ([]models.Bike, error) {
	return nil, nil
}
func (s *stubBikeSource) DistinctBrands(ctx context.Context) ([]string, error)    { return nil, nil }
func (s *stubBikeSource) DistinctFuelTypes(ctx context.Context) ([]string, error) { return nil, nil }
func (s *stubBikeSource) Create(ctx context.Context, bike *models.Bike) (*models.Bike, error) {
	return bike, nil
}
func (s *stubBikeSource) Update(ctx context.Context, bike *models.Bike) error { return nil }
func (s *stubBikeSource) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func newBookingService(t *testing.T, bikeID uuid.UUID) (Service, *stubBookingRepo) {
	t.Helper()
	repo := &stubBookingRepo{}
	bikes := &stubBikeSource{bikes: map[uuid.UUID]*models.Bike{
		bikeID: {ID: bikeID, Name: "Shine", Brand: "Honda"},
	}}
	svc, err := NewService(repo, bikes)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, repo
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	bikeID := uuid.New()
	svc, _ := newBookingService(t, bikeID)

	booking, err := svc.Create(context.Background(), CreateBookingInput{
		UserName: "Asha",
		Phone:    "9876543210",
		BikeID:   bikeID,
		Date:     time.Now().Format(DateLayout),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if booking.Status != enums.BookingStatusPending {
		t.Fatalf("expected pending status, got %s", booking.Status)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	bikeID := uuid.New()
	svc, _ := newBookingService(t, bikeID)
	today := time.Now().Format(DateLayout)

	cases := []struct {
		name  string
		input CreateBookingInput
	}{
		{"missing name", CreateBookingInput{Phone: "9876543210", BikeID: bikeID, Date: today}},
		{"short phone", CreateBookingInput{UserName: "Asha", Phone: "98765", BikeID: bikeID, Date: today}},
		{"landline prefix", CreateBookingInput{UserName: "Asha", Phone: "0123456789", BikeID: bikeID, Date: today}},
		{"missing bike", CreateBookingInput{UserName: "Asha", Phone: "9876543210", Date: today}},
		{"bad date format", CreateBookingInput{UserName: "Asha", Phone: "9876543210", BikeID: bikeID, Date: "31-12-2026"}},
		{"past date", CreateBookingInput{UserName: "Asha", Phone: "9876543210", BikeID: bikeID, Date: "2020-01-01"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateBookingUnknownBike(t *testing.T) {
	svc, _ := newBookingService(t, uuid.New())

	_, err := svc.Create(context.Background(), CreateBookingInput{
		UserName: "Asha",
		Phone:    "9876543210",
		BikeID:   uuid.New(),
		Date:     time.Now().Format(DateLayout),
	})
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListForDealerRequiresReviewer(t *testing.T) {
	bikeID := uuid.New()
	svc, repo := newBookingService(t, bikeID)
	repo.bookings = append(repo.bookings, models.Booking{ID: uuid.New(), UserName: "Asha"})

	if _, err := svc.ListForDealer(context.Background(), ListInput{ActorRole: enums.RoleUser}); !pkgerrors.IsCode(err, pkgerrors.CodeForbidden) {
		t.Fatalf("expected forbidden for user role, got %v", err)
	}

	rows, err := svc.ListForDealer(context.Background(), ListInput{ActorRole: enums.RoleDealer})
	if err != nil {
		t.Fatalf("ListForDealer: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(rows))
	}
}
