package models

import "time"

// Teacher is the staff profile owned by exactly one user.
type Teacher struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Age       int       `json:"age"`
	Sex       string    `gorm:"size:16" json:"sex"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User     User      `json:"user"`
	Subjects []Subject `gorm:"many2many:teacher_subjects" json:"subjects,omitempty"`
}
