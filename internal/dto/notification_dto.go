package dto

import (
	"time"

	"github.com/noah-isme/sekolah-go-api/internal/models"
)

// NotificationCreateRequest publishes an announcement. A nil TargetClassID means
// the notification is visible to everyone.
type NotificationCreateRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Message       string `json:"message" validate:"required,max=1000"`
	Type          string `json:"type" validate:"required,oneof=new_student message class_message global_message"`
	TargetClassID *uint  `json:"target_class_id"`
}

// NotificationResponse is the public projection of a notification.
type NotificationResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	TargetClassID *uint     `json:"target_class_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NotificationReadResponse reports the read state of one (notification, user) pair.
type NotificationReadResponse struct {
	NotificationID uint      `json:"notification_id"`
	UserID         uint      `json:"user_id"`
	IsRead         bool      `json:"is_read"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewNotificationResponse maps a notification model to its response projection.
func NewNotificationResponse(notification models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            notification.ID,
		Title:         notification.Title,
		Message:       notification.Message,
		Type:          notification.Type,
		TargetClassID: notification.TargetClassID,
		CreatedAt:     notification.CreatedAt,
		UpdatedAt:     notification.UpdatedAt,
	}
}

// NewNotificationResponseSlice maps a slice of notification models.
func NewNotificationResponseSlice(notifications []models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, NewNotificationResponse(notification))
	}
	return responses
}

// NewNotificationReadResponse maps a recipient row to its response projection.
func NewNotificationReadResponse(recipient models.NotificationRecipient) NotificationReadResponse {
	return NotificationReadResponse{
		NotificationID: recipient.NotificationID,
		UserID:         recipient.UserID,
		IsRead:         recipient.IsRead,
		UpdatedAt:      recipient.UpdatedAt,
	}
}
