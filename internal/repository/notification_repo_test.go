package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sekolah-go-api/internal/models"
)

func seedNotifications(t *testing.T, repo NotificationRepository) {
	t.Helper()

	base := time.Now().Add(-time.Hour)
	fixtures := []models.Notification{
		{Title: "Global", Message: "for everyone", Type: models.NotificationTypeGlobalMessage, IsActive: true, CreatedAt: base},
		{Title: "Class 3", Message: "for class 3", Type: models.NotificationTypeClassMessage, TargetClassID: uintPtr(3), IsActive: true, CreatedAt: base.Add(time.Minute)},
		{Title: "Class 8", Message: "for class 8", Type: models.NotificationTypeClassMessage, TargetClassID: uintPtr(8), IsActive: true, CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range fixtures {
		require.NoError(t, repo.Create(context.Background(), &fixtures[i]))
	}
}

func TestNotificationListForClass(t *testing.T) {
	db := setupTestDB(t, &models.Notification{})
	repo := NewNotificationRepository(db)
	seedNotifications(t, repo)

	visible, err := repo.ListForClass(context.Background(), uintPtr(3))
	require.NoError(t, err)
	require.Len(t, visible, 2)
	for _, notification := range visible {
		if notification.TargetClassID != nil {
			require.Equal(t, uint(3), *notification.TargetClassID)
		}
	}
}

func TestNotificationListForClassNilScopesToGlobal(t *testing.T) {
	db := setupTestDB(t, &models.Notification{})
	repo := NewNotificationRepository(db)
	seedNotifications(t, repo)

	visible, err := repo.ListForClass(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	require.Equal(t, "Global", visible[0].Title)
}

func TestNotificationListAllNewestFirst(t *testing.T) {
	db := setupTestDB(t, &models.Notification{})
	repo := NewNotificationRepository(db)
	seedNotifications(t, repo)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Class 8", all[0].Title)
	require.Equal(t, "Global", all[2].Title)
}

func TestNotificationMarkReadUpsert(t *testing.T) {
	db := setupTestDB(t, &models.Notification{}, &models.NotificationRecipient{})
	repo := NewNotificationRepository(db)

	notification := models.Notification{Title: "Global", Message: "hi", Type: models.NotificationTypeGlobalMessage, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), &notification))

	first, err := repo.MarkRead(context.Background(), notification.ID, 10)
	require.NoError(t, err)
	require.True(t, first.IsRead)

	second, err := repo.MarkRead(context.Background(), notification.ID, 10)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID, "repeat mark must reuse the existing row")

	var count int64
	require.NoError(t, db.Model(&models.NotificationRecipient{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}
