package models

import (
	"time"

	"gorm.io/datatypes"
)

// Attendance statuses.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// Mark is a score a teacher gave a student for a subject on a given date. The
// composite unique index makes concurrent duplicate inserts fail at the store
// instead of relying on a check-then-insert in application code.
type Mark struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StudentID uint           `gorm:"not null;uniqueIndex:idx_marks_student_subject_date" json:"student_id"`
	SubjectID uint           `gorm:"not null;uniqueIndex:idx_marks_student_subject_date" json:"subject_id"`
	TeacherID uint           `gorm:"index;not null" json:"teacher_id"`
	Score     int            `gorm:"not null" json:"score"`
	Date      datatypes.Date `gorm:"not null;uniqueIndex:idx_marks_student_subject_date" json:"date"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Attendance records presence of a student in a subject on a given date. Same
// uniqueness rule as Mark.
type Attendance struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StudentID uint           `gorm:"not null;uniqueIndex:idx_attendance_student_subject_date" json:"student_id"`
	SubjectID uint           `gorm:"not null;uniqueIndex:idx_attendance_student_subject_date" json:"subject_id"`
	TeacherID uint           `gorm:"index;not null" json:"teacher_id"`
	Status    string         `gorm:"size:16;not null" json:"status"`
	Date      datatypes.Date `gorm:"not null;uniqueIndex:idx_attendance_student_subject_date" json:"date"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Behavior is a free-form remark a teacher left about a student.
type Behavior struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StudentID uint           `gorm:"index;not null" json:"student_id"`
	TeacherID uint           `gorm:"index;not null" json:"teacher_id"`
	Remarks   string         `gorm:"size:500;not null" json:"remarks"`
	Date      datatypes.Date `gorm:"not null" json:"date"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
