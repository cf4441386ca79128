package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/sekolah-go-api/internal/dto"
	"github.com/noah-isme/sekolah-go-api/internal/models"
	"github.com/noah-isme/sekolah-go-api/internal/repository"
)

// StudentService serves the self-view endpoints of a logged-in student.
type StudentService interface {
	Profile(ctx context.Context, user models.User) (dto.StudentResponse, error)
	Marks(ctx context.Context, user models.User) ([]dto.MarkResponse, error)
	Attendance(ctx context.Context, user models.User) ([]dto.AttendanceResponse, error)
	Behavior(ctx context.Context, user models.User) ([]dto.BehaviorResponse, error)
}

type studentService struct {
	students repository.StudentRepository
	records  repository.RecordRepository
	logger   zerolog.Logger
}

// NewStudentService constructs the student self-view service.
func NewStudentService(students repository.StudentRepository, records repository.RecordRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		students: students,
		records:  records,
		logger:   logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) Profile(ctx context.Context, user models.User) (dto.StudentResponse, error) {
	student, err := s.profileOf(ctx, user)
	if err != nil {
		return dto.StudentResponse{}, err
	}
	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Marks(ctx context.Context, user models.User) ([]dto.MarkResponse, error) {
	student, err := s.profileOf(ctx, user)
	if err != nil {
		return nil, err
	}

	marks, err := s.records.ListMarksByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewMarkResponseSlice(marks), nil
}

func (s *studentService) Attendance(ctx context.Context, user models.User) ([]dto.AttendanceResponse, error) {
	student, err := s.profileOf(ctx, user)
	if err != nil {
		return nil, err
	}

	records, err := s.records.ListAttendanceByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewAttendanceResponseSlice(records), nil
}

func (s *studentService) Behavior(ctx context.Context, user models.User) ([]dto.BehaviorResponse, error) {
	student, err := s.profileOf(ctx, user)
	if err != nil {
		return nil, err
	}

	records, err := s.records.ListBehaviorByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewBehaviorResponseSlice(records), nil
}

func (s *studentService) profileOf(ctx context.Context, user models.User) (models.Student, error) {
	student, err := s.students.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, ErrStudentNotFound
		}
		return models.Student{}, err
	}
	return student, nil
}
