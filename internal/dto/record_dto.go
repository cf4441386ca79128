package dto

import (
	"time"

	"github.com/noah-isme/sekolah-go-api/internal/models"
)

// DateLayout is the wire format used for record dates.
const DateLayout = "2006-01-02"

// MarkCreateRequest records a score for a student. Date is optional and defaults
// to today.
type MarkCreateRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	SubjectID uint   `json:"subject_id" validate:"required"`
	Score     int    `json:"score" validate:"gte=0,lte=100"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// AttendanceCreateRequest records presence for a student.
type AttendanceCreateRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	SubjectID uint   `json:"subject_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Present Absent"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// BehaviorCreateRequest records a remark about a student.
type BehaviorCreateRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Remarks   string `json:"remarks" validate:"required,max=500"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// MarkResponse is the public projection of a mark.
type MarkResponse struct {
	ID        uint      `json:"id"`
	StudentID uint      `json:"student_id"`
	SubjectID uint      `json:"subject_id"`
	TeacherID uint      `json:"teacher_id"`
	Score     int       `json:"score"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// AttendanceResponse is the public projection of an attendance record.
type AttendanceResponse struct {
	ID        uint      `json:"id"`
	StudentID uint      `json:"student_id"`
	SubjectID uint      `json:"subject_id"`
	TeacherID uint      `json:"teacher_id"`
	Status    string    `json:"status"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// BehaviorResponse is the public projection of a behavior record.
type BehaviorResponse struct {
	ID        uint      `json:"id"`
	StudentID uint      `json:"student_id"`
	TeacherID uint      `json:"teacher_id"`
	Remarks   string    `json:"remarks"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMarkResponse maps a mark model to its response projection.
func NewMarkResponse(mark models.Mark) MarkResponse {
	return MarkResponse{
		ID:        mark.ID,
		StudentID: mark.StudentID,
		SubjectID: mark.SubjectID,
		TeacherID: mark.TeacherID,
		Score:     mark.Score,
		Date:      time.Time(mark.Date).Format(DateLayout),
		CreatedAt: mark.CreatedAt,
	}
}

// NewMarkResponseSlice maps a slice of mark models.
func NewMarkResponseSlice(marks []models.Mark) []MarkResponse {
	responses := make([]MarkResponse, 0, len(marks))
	for _, mark := range marks {
		responses = append(responses, NewMarkResponse(mark))
	}
	return responses
}

// NewAttendanceResponse maps an attendance model to its response projection.
func NewAttendanceResponse(attendance models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        attendance.ID,
		StudentID: attendance.StudentID,
		SubjectID: attendance.SubjectID,
		TeacherID: attendance.TeacherID,
		Status:    attendance.Status,
		Date:      time.Time(attendance.Date).Format(DateLayout),
		CreatedAt: attendance.CreatedAt,
	}
}

// NewAttendanceResponseSlice maps a slice of attendance models.
func NewAttendanceResponseSlice(records []models.Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, NewAttendanceResponse(record))
	}
	return responses
}

// NewBehaviorResponse maps a behavior model to its response projection.
func NewBehaviorResponse(behavior models.Behavior) BehaviorResponse {
	return BehaviorResponse{
		ID:        behavior.ID,
		StudentID: behavior.StudentID,
		TeacherID: behavior.TeacherID,
		Remarks:   behavior.Remarks,
		Date:      time.Time(behavior.Date).Format(DateLayout),
		CreatedAt: behavior.CreatedAt,
	}
}

// NewBehaviorResponseSlice maps a slice of behavior models.
func NewBehaviorResponseSlice(records []models.Behavior) []BehaviorResponse {
	responses := make([]BehaviorResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, NewBehaviorResponse(record))
	}
	return responses
}
