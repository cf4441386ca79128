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

// TeacherService serves the self-view endpoints of a logged-in teacher.
type TeacherService interface {
	Profile(ctx context.Context, user models.User) (dto.TeacherResponse, error)
	Assignments(ctx context.Context, user models.User) ([]dto.ClassAssignmentResponse, error)
	ClassRoster(ctx context.Context, user models.User, classID uint) ([]dto.StudentResponse, error)
}

type teacherService struct {
	teachers    repository.TeacherRepository
	students    repository.StudentRepository
	assignments repository.ClassAssignmentRepository
	logger      zerolog.Logger
}

// NewTeacherService constructs the teacher self-view service.
func NewTeacherService(teachers repository.TeacherRepository, students repository.StudentRepository, assignments repository.ClassAssignmentRepository, logger zerolog.Logger) TeacherService {
	return &teacherService{
		teachers:    teachers,
		students:    students,
		assignments: assignments,
		logger:      logger.With().Str("component", "teacher_service").Logger(),
	}
}

func (s *teacherService) Profile(ctx context.Context, user models.User) (dto.TeacherResponse, error) {
	teacher, err := s.profileOf(ctx, user)
	if err != nil {
		return dto.TeacherResponse{}, err
	}
	return dto.NewTeacherResponse(teacher), nil
}

func (s *teacherService) Assignments(ctx context.Context, user models.User) ([]dto.ClassAssignmentResponse, error) {
	teacher, err := s.profileOf(ctx, user)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignments.ListByTeacher(ctx, teacher.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewClassAssignmentResponseSlice(assignments), nil
}

// ClassRoster lists the students of a class the teacher is assigned to. Holding
// no active assignment for the class is a forbidden condition, not an empty list.
func (s *teacherService) ClassRoster(ctx context.Context, user models.User, classID uint) ([]dto.StudentResponse, error) {
	teacher, err := s.profileOf(ctx, user)
	if err != nil {
		return nil, err
	}

	assigned, err := s.assignments.ExistsForClass(ctx, teacher.ID, classID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, ErrNotAssignedToClass
	}

	students, err := s.students.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponseSlice(students), nil
}

func (s *teacherService) profileOf(ctx context.Context, user models.User) (models.Teacher, error) {
	teacher, err := s.teachers.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Teacher{}, ErrTeacherNotFound
		}
		return models.Teacher{}, err
	}
	return teacher, nil
}
