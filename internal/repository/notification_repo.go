package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noah-isme/sekolah-go-api/internal/models"
)

// NotificationRepository handles persistence for notifications and read state.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	FindByID(ctx context.Context, id uint) (models.Notification, error)
	ListAll(ctx context.Context) ([]models.Notification, error)
	ListForClass(ctx context.Context, classID *uint) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID uint) (models.NotificationRecipient, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository constructs a repository backed by GORM.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) FindByID(ctx context.Context, id uint) (models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).First(&notification, id).Error; err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func (r *notificationRepository) ListAll(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// ListForClass returns the notifications visible to a member of the given class:
// global ones plus those targeted at the class. A nil classID narrows the set to
// global notifications only.
func (r *notificationRepository) ListForClass(ctx context.Context, classID *uint) ([]models.Notification, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if classID != nil {
		query = query.Where("target_class_id IS NULL OR target_class_id = ?", *classID)
	} else {
		query = query.Where("target_class_id IS NULL")
	}

	var notifications []models.Notification
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, userID uint) (models.NotificationRecipient, error) {
	recipient := models.NotificationRecipient{
		NotificationID: notificationID,
		UserID:         userID,
		IsRead:         true,
		IsActive:       true,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "notification_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"is_read": true}),
		}).
		Create(&recipient).Error; err != nil {
		return models.NotificationRecipient{}, err
	}

	if err := r.db.WithContext(ctx).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		First(&recipient).Error; err != nil {
		return models.NotificationRecipient{}, err
	}

	return recipient, nil
}
