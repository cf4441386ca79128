package dto

import (
	"time"

	"github.com/noah-isme/sekolah-go-api/internal/models"
)

// StudentCreateRequest registers a student profile for an existing user.
type StudentCreateRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	ClassID *uint  `json:"class_id"`
	Age     int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Sex     string `json:"sex" validate:"omitempty,oneof=male female other"`
}

// TeacherCreateRequest registers a teacher profile for an existing user.
type TeacherCreateRequest struct {
	UserID     uint   `json:"user_id" validate:"required"`
	Age        int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Sex        string `json:"sex" validate:"omitempty,oneof=male female other"`
	SubjectIDs []uint `json:"subject_ids"`
}

// ClassCreateRequest creates a named class.
type ClassCreateRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// SubjectCreateRequest creates a subject.
type SubjectCreateRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ClassAssignmentCreateRequest links a teacher, a class and a subject.
type ClassAssignmentCreateRequest struct {
	TeacherID uint `json:"teacher_id" validate:"required"`
	ClassID   uint `json:"class_id" validate:"required"`
	SubjectID uint `json:"subject_id" validate:"required"`
}

// StudentResponse is the public projection of a student profile.
type StudentResponse struct {
	ID        uint          `json:"id"`
	UserID    uint          `json:"user_id"`
	ClassID   *uint         `json:"class_id"`
	Age       int           `json:"age"`
	Sex       string        `json:"sex"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	User      *UserResponse `json:"user,omitempty"`
}

// TeacherResponse is the public projection of a teacher profile.
type TeacherResponse struct {
	ID        uint              `json:"id"`
	UserID    uint              `json:"user_id"`
	Age       int               `json:"age"`
	Sex       string            `json:"sex"`
	IsActive  bool              `json:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	User      *UserResponse     `json:"user,omitempty"`
	Subjects  []SubjectResponse `json:"subjects,omitempty"`
}

// ClassResponse is the public projection of a class.
type ClassResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubjectResponse is the public projection of a subject.
type SubjectResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClassAssignmentResponse is the public projection of a class assignment.
type ClassAssignmentResponse struct {
	ID        uint      `json:"id"`
	TeacherID uint      `json:"teacher_id"`
	ClassID   uint      `json:"class_id"`
	SubjectID uint      `json:"subject_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStudentResponse maps a student model to its response projection.
func NewStudentResponse(student models.Student) StudentResponse {
	response := StudentResponse{
		ID:        student.ID,
		UserID:    student.UserID,
		ClassID:   student.ClassID,
		Age:       student.Age,
		Sex:       student.Sex,
		IsActive:  student.IsActive,
		CreatedAt: student.CreatedAt,
		UpdatedAt: student.UpdatedAt,
	}
	if student.User.ID != 0 {
		user := NewUserResponse(student.User)
		response.User = &user
	}
	return response
}

// NewStudentResponseSlice maps a slice of student models.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}
	return responses
}

// NewTeacherResponse maps a teacher model to its response projection.
func NewTeacherResponse(teacher models.Teacher) TeacherResponse {
	response := TeacherResponse{
		ID:        teacher.ID,
		UserID:    teacher.UserID,
		Age:       teacher.Age,
		Sex:       teacher.Sex,
		IsActive:  teacher.IsActive,
		CreatedAt: teacher.CreatedAt,
		UpdatedAt: teacher.UpdatedAt,
	}
	if teacher.User.ID != 0 {
		user := NewUserResponse(teacher.User)
		response.User = &user
	}
	for _, subject := range teacher.Subjects {
		response.Subjects = append(response.Subjects, NewSubjectResponse(subject))
	}
	return response
}

// NewClassResponse maps a class model to its response projection.
func NewClassResponse(class models.Class) ClassResponse {
	return ClassResponse{
		ID:        class.ID,
		Name:      class.Name,
		IsActive:  class.IsActive,
		CreatedAt: class.CreatedAt,
		UpdatedAt: class.UpdatedAt,
	}
}

// NewClassResponseSlice maps a slice of class models.
func NewClassResponseSlice(classes []models.Class) []ClassResponse {
	responses := make([]ClassResponse, 0, len(classes))
	for _, class := range classes {
		responses = append(responses, NewClassResponse(class))
	}
	return responses
}

// NewSubjectResponse maps a subject model to its response projection.
func NewSubjectResponse(subject models.Subject) SubjectResponse {
	return SubjectResponse{
		ID:        subject.ID,
		Name:      subject.Name,
		IsActive:  subject.IsActive,
		CreatedAt: subject.CreatedAt,
		UpdatedAt: subject.UpdatedAt,
	}
}

// NewSubjectResponseSlice maps a slice of subject models.
func NewSubjectResponseSlice(subjects []models.Subject) []SubjectResponse {
	responses := make([]SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, NewSubjectResponse(subject))
	}
	return responses
}

// NewClassAssignmentResponse maps a class assignment model to its response projection.
func NewClassAssignmentResponse(assignment models.ClassAssignment) ClassAssignmentResponse {
	return ClassAssignmentResponse{
		ID:        assignment.ID,
		TeacherID: assignment.TeacherID,
		ClassID:   assignment.ClassID,
		SubjectID: assignment.SubjectID,
		IsActive:  assignment.IsActive,
		CreatedAt: assignment.CreatedAt,
		UpdatedAt: assignment.UpdatedAt,
	}
}

// NewClassAssignmentResponseSlice maps a slice of class assignment models.
func NewClassAssignmentResponseSlice(assignments []models.ClassAssignment) []ClassAssignmentResponse {
	responses := make([]ClassAssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewClassAssignmentResponse(assignment))
	}
	return responses
}
