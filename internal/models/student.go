package models

import "time"

// Student is the learner profile owned by exactly one user. ClassID is nil for
// students not yet placed in a class; their notification scope is then global only.
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	ClassID   *uint     `gorm:"index" json:"class_id"`
	Age       int       `json:"age"`
	Sex       string    `gorm:"size:16" json:"sex"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User   `json:"user"`
	Class *Class `json:"class,omitempty"`
}
