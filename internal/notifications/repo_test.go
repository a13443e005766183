package notifications

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

func setupNotificationsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Notification{}))
	return db
}

func seedNotification(t *testing.T, db *gorm.DB, userID uuid.UUID, createdAt time.Time) *models.Notification {
	t.Helper()
	n := &models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      enums.NotificationKindOrderPlaced,
		Title:     "New order on your listing",
		Body:      "Asha placed an order.",
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(n).Error)
	return n
}

func TestNotificationsRepoListPagination(t *testing.T) {
	db := setupNotificationsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedNotification(t, db, userID, base.Add(time.Duration(i)*time.Minute))
	}
	seedNotification(t, db, uuid.New(), base)

	first, next, err := repo.List(ctx, listNotificationsParams{UserID: userID, Limit: 3})
	require.NoError(t, err)
	require.Len(t, first, 3)
	require.NotNil(t, next)

	second, last, err := repo.List(ctx, listNotificationsParams{UserID: userID, Limit: 3, Cursor: next})
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.Nil(t, last)

	// Both pages together cover every notification for the user,
	// with no duplicates across the boundary.
	seen := map[uuid.UUID]bool{}
	for _, n := range append(first, second...) {
		require.Equal(t, userID, n.UserID)
		require.False(t, seen[n.ID])
		seen[n.ID] = true
	}
	require.Len(t, seen, 5)

	var total []models.Notification
	require.NoError(t, db.Where("user_id = ?", userID).Find(&total).Error)
	for _, n := range total {
		require.True(t, seen[n.ID], "notification %s missing from paginated walk", n.ID)
	}
}

func TestNotificationsRepoUnreadFilter(t *testing.T) {
	db := setupNotificationsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	read := seedNotification(t, db, userID, time.Now().Add(-time.Minute))
	unread := seedNotification(t, db, userID, time.Now())

	mark, err := repo.MarkRead(ctx, userID, read.ID, time.Now())
	require.NoError(t, err)
	require.True(t, mark.Updated)

	rows, _, err := repo.List(ctx, listNotificationsParams{UserID: userID, UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, unread.ID, rows[0].ID)
}

func TestNotificationsRepoMarkReadIdempotent(t *testing.T) {
	db := setupNotificationsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	n := seedNotification(t, db, userID, time.Now())

	first, err := repo.MarkRead(ctx, userID, n.ID, time.Now())
	require.NoError(t, err)
	require.True(t, first.Updated)
	require.True(t, first.Found)

	second, err := repo.MarkRead(ctx, userID, n.ID, time.Now())
	require.NoError(t, err)
	require.False(t, second.Updated)
	require.True(t, second.Found)

	// Another user's id never resolves the notification.
	other, err := repo.MarkRead(ctx, uuid.New(), n.ID, time.Now())
	require.NoError(t, err)
	require.False(t, other.Found)
}
