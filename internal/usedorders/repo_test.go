package usedorders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vahanbazar/vahanbazar-backend/pkg/db/models"
	"github.com/vahanbazar/vahanbazar-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UsedListing{}, &models.UsedOrder{}))
	return db
}

func seedOrderListing(t *testing.T, db *gorm.DB, title, brand string, ownerID uuid.UUID) *models.UsedListing {
	t.Helper()
	listing := &models.UsedListing{
		ID:      uuid.New(),
		Title:   title,
		Brand:   brand,
		Price:   50000,
		Status:  enums.ListingStatusApproved,
		OwnerID: ownerID,
	}
	require.NoError(t, db.Create(listing).Error)
	return listing
}

func seedOrder(t *testing.T, db *gorm.DB, listingID, buyerID uuid.UUID, createdAt time.Time) *models.UsedOrder {
	t.Helper()
	order := &models.UsedOrder{
		ID:           uuid.New(),
		UsedID:       listingID,
		BuyerID:      buyerID,
		BuyerName:    "Buyer",
		BuyerPhone:   "9876543210",
		PriceAtOrder: 50000,
		Status:       enums.OrderStatusPending,
		CreatedAt:    createdAt,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestOrdersRepoListByBuyerJoinsListing(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seller := uuid.New()
	buyer := uuid.New()
	listing := seedOrderListing(t, db, "Honda Shine 2019", "Honda", seller)
	order := seedOrder(t, db, listing.ID, buyer, time.Now())
	seedOrder(t, db, listing.ID, uuid.New(), time.Now())

	rows, err := repo.ListByBuyer(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, order.ID, rows[0].ID)
	require.NotNil(t, rows[0].ListingTitle)
	require.Equal(t, "Honda Shine 2019", *rows[0].ListingTitle)
	require.NotNil(t, rows[0].SellerID)
	require.Equal(t, seller, *rows[0].SellerID)
}

func TestOrdersRepoSurvivesListingDelete(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	buyer := uuid.New()
	listing := seedOrderListing(t, db, "Bajaj Pulsar", "Bajaj", uuid.New())
	order := seedOrder(t, db, listing.ID, buyer, time.Now())

	require.NoError(t, db.Delete(&models.UsedListing{}, "id = ?", listing.ID).Error)

	rows, err := repo.ListByBuyer(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, order.ID, rows[0].ID)
	require.Equal(t, 50000, rows[0].PriceAtOrder)
	require.Nil(t, rows[0].ListingTitle)
	require.Nil(t, rows[0].SellerID)
}

func TestOrdersRepoListAllNewestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	listing := seedOrderListing(t, db, "TVS Apache", "TVS", uuid.New())
	base := time.Now().Add(-time.Hour)
	old := seedOrder(t, db, listing.ID, uuid.New(), base)
	recent := seedOrder(t, db, listing.ID, uuid.New(), base.Add(time.Minute))

	rows, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, recent.ID, rows[0].ID)
	require.Equal(t, old.ID, rows[1].ID)
}

func TestOrdersRepoUpdateStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	listing := seedOrderListing(t, db, "Royal Enfield Classic", "Royal Enfield", uuid.New())
	order := seedOrder(t, db, listing.ID, uuid.New(), time.Now())

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, enums.OrderStatusConfirmed))
	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusConfirmed, reloaded.Status)
}
