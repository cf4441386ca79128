package models

import "time"

// Notification types.
const (
	NotificationTypeNewStudent    = "new_student"
	NotificationTypeMessage       = "message"
	NotificationTypeClassMessage  = "class_message"
	NotificationTypeGlobalMessage = "global_message"
)

// Notification is an announcement targeted at either one class or everyone.
// A nil TargetClassID means global. The target never changes after creation.
type Notification struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Message       string    `gorm:"size:1000;not null" json:"message"`
	Type          string    `gorm:"size:32;not null" json:"type"`
	TargetClassID *uint     `gorm:"index" json:"target_class_id"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NotificationRecipient tracks per-user read state. Rows are created lazily when a
// user marks a notification read; visibility never consults this table.
type NotificationRecipient struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	NotificationID uint      `gorm:"not null;uniqueIndex:idx_recipient_notification_user" json:"notification_id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_recipient_notification_user" json:"user_id"`
	IsRead         bool      `gorm:"not null;default:false" json:"is_read"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
