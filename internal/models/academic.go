package models

import "time"

// Class is a named grouping of students and the unit notifications can target.
type Class struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subject is a taught discipline.
type Subject struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClassAssignment links a teacher to the subject they teach in a class. It is the
// authorization predicate for class-targeted notifications and for teacher access
// to rosters, marks and attendance entry.
type ClassAssignment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeacherID uint      `gorm:"index;not null" json:"teacher_id"`
	ClassID   uint      `gorm:"index;not null" json:"class_id"`
	SubjectID uint      `gorm:"index;not null" json:"subject_id"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Teacher Teacher `json:"teacher,omitempty"`
	Class   Class   `json:"class,omitempty"`
	Subject Subject `json:"subject,omitempty"`
}
