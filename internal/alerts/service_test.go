package alerts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/internal/catalog"
	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
	pkgerrors "github.com/vahanbazar/vahanbazar-backend/pkg/errors"
)

type stubAlertRepo struct {
	alerts map[uuid.UUID]*models.PriceAlert
}

func newStubAlertRepo() *stubAlertRepo {
	return &stubAlertRepo{alerts: make(map[uuid.UUID]*models.PriceAlert)}
}

func (s *stubAlertRepo) Replace(ctx context.Context, alert *models.PriceAlert) (*models.PriceAlert, error) {
	for id, existing := range s.alerts {
		if existing.UserID == alert.UserID && existing.BikeID == alert.BikeID {
			delete(s.alerts, id)
		}
	}
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	s.alerts[alert.ID] = alert
	return alert, nil
}

func (s *stubAlertRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.PriceAlert, error) {
	if a, ok := s.alerts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAlertRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PriceAlert, error) {
	var rows []models.PriceAlert
	for _, a := range s.alerts {
		if a.UserID == userID {
			rows = append(rows, *a)
		}
	}
	return rows, nil
}

func (s *stubAlertRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.alerts, id)
	return nil
}

type stubAlertBikes struct {
	bikes map[uuid.UUID]*models.Bike
}

func (s *stubAlertBikes) WithTx(tx *gorm.DB) catalog.Repository { return s }

func (s *stubAlertBikes) FindByID(ctx context.Context, id uuid.UUID) (*models.Bike, error) {
	if b, ok := s.bikes[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAlertBikes) List(ctx context.Context, filters catalog.ListFilters) ([]models.Bike, error) {
	return nil, nil
}
func (s *stubAlertBikes) ListAll(ctx context.Context) ([]models.Bike, error) { return nil, nil }
func (s *stubAlertBikes) ListNewest(ctx context.Context, limit int) ([]models.Bike, error) {
	return nil, nil
}
func (s *stubAlertBikes) DistinctBrands(ctx context.Context) ([]string, error)    { return nil, nil }
func (s *stubAlertBikes) DistinctFuelTypes(ctx context.Context) ([]string, error) { return nil, nil }
func (s *stubAlertBikes) Create(ctx context.Context, bike *models.Bike) (*models.Bike, error) {
	return bike, nil
}
func (s *stubAlertBikes) Update(ctx context.Context, bike *models.Bike) error { return nil }
func (s *stubAlertBikes) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func newAlertService(t *testing.T, bikeID uuid.UUID) (Service, *stubAlertRepo) {
	t.Helper()
	repo := newStubAlertRepo()
	bikes := &stubAlertBikes{bikes: map[uuid.UUID]*models.Bike{
		bikeID: {ID: bikeID, Name: "Shine", Brand: "Honda"},
	}}
	svc, err := NewService(repo, bikes)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, repo
}

func TestSaveAlertDefaultsThreshold(t *testing.T) {
	bikeID := uuid.New()
	svc, _ := newAlertService(t, bikeID)

	alert, err := svc.Save(context.Background(), SaveAlertInput{
		BikeID: bikeID,
		Actor:  Actor{UserID: uuid.New(), Role: enums.RoleUser},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if alert.ThresholdPercent != DefaultThresholdPercent {
		t.Fatalf("expected default threshold, got %d", alert.ThresholdPercent)
	}
	if !alert.Active {
		t.Fatal("new alert must be active")
	}
}

func TestSaveAlertReplacesPrevious(t *testing.T) {
	bikeID := uuid.New()
	userID := uuid.New()
	svc, repo := newAlertService(t, bikeID)
	ctx := context.Background()
	actor := Actor{UserID: userID, Role: enums.RoleUser}

	if _, err := svc.Save(ctx, SaveAlertInput{BikeID: bikeID, ThresholdPercent: 5, Actor: actor}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := svc.Save(ctx, SaveAlertInput{BikeID: bikeID, ThresholdPercent: 20, Actor: actor})
	if err != nil {
		t.Fatalf("Save again: %v", err)
	}
	if len(repo.alerts) != 1 {
		t.Fatalf("expected 1 stored alert, got %d", len(repo.alerts))
	}
	if repo.alerts[second.ID].ThresholdPercent != 20 {
		t.Fatalf("expected threshold 20, got %d", repo.alerts[second.ID].ThresholdPercent)
	}
}

func TestSaveAlertThresholdBounds(t *testing.T) {
	bikeID := uuid.New()
	svc, _ := newAlertService(t, bikeID)
	actor := Actor{UserID: uuid.New(), Role: enums.RoleUser}

	for _, threshold := range []int{-5, 101} {
		_, err := svc.Save(context.Background(), SaveAlertInput{BikeID: bikeID, ThresholdPercent: threshold, Actor: actor})
		if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("threshold %d: expected validation error, got %v", threshold, err)
		}
	}
}

func TestSaveAlertUnknownBike(t *testing.T) {
	svc, _ := newAlertService(t, uuid.New())

	_, err := svc.Save(context.Background(), SaveAlertInput{
		BikeID: uuid.New(),
		Actor:  Actor{UserID: uuid.New(), Role: enums.RoleUser},
	})
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteAlertOwnership(t *testing.T) {
	bikeID := uuid.New()
	owner := Actor{UserID: uuid.New(), Role: enums.RoleUser}
	svc, _ := newAlertService(t, bikeID)
	ctx := context.Background()

	alert, err := svc.Save(ctx, SaveAlertInput{BikeID: bikeID, Actor: owner})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	stranger := Actor{UserID: uuid.New(), Role: enums.RoleUser}
	if err := svc.Delete(ctx, alert.ID, stranger); !pkgerrors.IsCode(err, pkgerrors.CodeForbidden) {
		t.Fatalf("expected forbidden for stranger, got %v", err)
	}
	if err := svc.Delete(ctx, alert.ID, owner); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	rows, err := svc.ListMine(ctx, owner)
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no alerts after delete, got %d", len(rows))
	}
}
