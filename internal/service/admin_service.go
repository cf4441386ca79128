package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/sekolah-go-api/internal/dto"
	"github.com/noah-isme/sekolah-go-api/internal/models"
	"github.com/noah-isme/sekolah-go-api/internal/repository"
)

// ErrUserNotFound is returned when the referenced user account does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrProfileExists is returned when the user already owns a profile of that kind.
var ErrProfileExists = errors.New("profile already exists for this user")

// ErrClassNotFound is returned when the referenced class does not exist.
var ErrClassNotFound = errors.New("class not found")

// ErrSubjectNotFound is returned when a referenced subject does not exist.
var ErrSubjectNotFound = errors.New("subject not found")

// ErrNameTaken is returned when a class or subject name is already in use.
var ErrNameTaken = errors.New("name already in use")

// AdminService covers the administrative setup operations: accounts, profiles,
// classes, subjects and teacher assignments.
type AdminService interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, id uint) (dto.UserResponse, error)
	CreateStudent(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error)
	ListStudents(ctx context.Context) ([]dto.StudentResponse, error)
	CreateTeacher(ctx context.Context, payload dto.TeacherCreateRequest) (dto.TeacherResponse, error)
	CreateClass(ctx context.Context, payload dto.ClassCreateRequest) (dto.ClassResponse, error)
	ListClasses(ctx context.Context) ([]dto.ClassResponse, error)
	CreateSubject(ctx context.Context, payload dto.SubjectCreateRequest) (dto.SubjectResponse, error)
	ListSubjects(ctx context.Context) ([]dto.SubjectResponse, error)
	CreateAssignment(ctx context.Context, payload dto.ClassAssignmentCreateRequest) (dto.ClassAssignmentResponse, error)
}

type adminService struct {
	users       repository.UserRepository
	students    repository.StudentRepository
	teachers    repository.TeacherRepository
	classes     repository.ClassRepository
	subjects    repository.SubjectRepository
	assignments repository.ClassAssignmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewAdminService constructs the admin service.
func NewAdminService(users repository.UserRepository, students repository.StudentRepository, teachers repository.TeacherRepository, classes repository.ClassRepository, subjects repository.SubjectRepository, assignments repository.ClassAssignmentRepository, validate *validator.Validate, logger zerolog.Logger) AdminService {
	return &adminService{
		users:       users,
		students:    students,
		teachers:    teachers,
		classes:     classes,
		subjects:    subjects,
		assignments: assignments,
		validator:   validate,
		logger:      logger.With().Str("component", "admin_service").Logger(),
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponseSlice(users), nil
}

func (s *adminService) GetUser(ctx context.Context, id uint) (dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *adminService) CreateStudent(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	user, err := s.users.FindByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrUserNotFound
		}
		return dto.StudentResponse{}, err
	}

	if payload.ClassID != nil {
		if _, err := s.classes.FindByID(ctx, *payload.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dto.StudentResponse{}, ErrClassNotFound
			}
			return dto.StudentResponse{}, err
		}
	}

	student := models.Student{
		UserID:   user.ID,
		ClassID:  payload.ClassID,
		Age:      payload.Age,
		Sex:      payload.Sex,
		IsActive: true,
	}

	if err := s.students.Create(ctx, &student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.StudentResponse{}, ErrProfileExists
		}
		return dto.StudentResponse{}, err
	}

	student.User = user

	s.logger.Info().Uint("student_id", student.ID).Uint("user_id", user.ID).Msg("student profile created")

	return dto.NewStudentResponse(student), nil
}

func (s *adminService) ListStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponseSlice(students), nil
}

func (s *adminService) CreateTeacher(ctx context.Context, payload dto.TeacherCreateRequest) (dto.TeacherResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TeacherResponse{}, err
	}

	user, err := s.users.FindByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TeacherResponse{}, ErrUserNotFound
		}
		return dto.TeacherResponse{}, err
	}

	var subjects []models.Subject
	if len(payload.SubjectIDs) > 0 {
		subjects, err = s.subjects.FindByIDs(ctx, payload.SubjectIDs)
		if err != nil {
			return dto.TeacherResponse{}, err
		}
		if len(subjects) != len(payload.SubjectIDs) {
			return dto.TeacherResponse{}, ErrSubjectNotFound
		}
	}

	teacher := models.Teacher{
		UserID:   user.ID,
		Age:      payload.Age,
		Sex:      payload.Sex,
		IsActive: true,
		Subjects: subjects,
	}

	if err := s.teachers.Create(ctx, &teacher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.TeacherResponse{}, ErrProfileExists
		}
		return dto.TeacherResponse{}, err
	}

	teacher.User = user

	s.logger.Info().Uint("teacher_id", teacher.ID).Uint("user_id", user.ID).Msg("teacher profile created")

	return dto.NewTeacherResponse(teacher), nil
}

func (s *adminService) CreateClass(ctx context.Context, payload dto.ClassCreateRequest) (dto.ClassResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassResponse{}, err
	}

	class := models.Class{Name: payload.Name, IsActive: true}
	if err := s.classes.Create(ctx, &class); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ClassResponse{}, ErrNameTaken
		}
		return dto.ClassResponse{}, err
	}

	return dto.NewClassResponse(class), nil
}

func (s *adminService) ListClasses(ctx context.Context) ([]dto.ClassResponse, error) {
	classes, err := s.classes.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewClassResponseSlice(classes), nil
}

func (s *adminService) CreateSubject(ctx context.Context, payload dto.SubjectCreateRequest) (dto.SubjectResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubjectResponse{}, err
	}

	subject := models.Subject{Name: payload.Name, IsActive: true}
	if err := s.subjects.Create(ctx, &subject); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.SubjectResponse{}, ErrNameTaken
		}
		return dto.SubjectResponse{}, err
	}

	return dto.NewSubjectResponse(subject), nil
}

func (s *adminService) ListSubjects(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewSubjectResponseSlice(subjects), nil
}

func (s *adminService) CreateAssignment(ctx context.Context, payload dto.ClassAssignmentCreateRequest) (dto.ClassAssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassAssignmentResponse{}, err
	}

	if _, err := s.teachers.FindByID(ctx, payload.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClassAssignmentResponse{}, ErrTeacherNotFound
		}
		return dto.ClassAssignmentResponse{}, err
	}

	if _, err := s.classes.FindByID(ctx, payload.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ClassAssignmentResponse{}, ErrClassNotFound
		}
		return dto.ClassAssignmentResponse{}, err
	}

	subjects, err := s.subjects.FindByIDs(ctx, []uint{payload.SubjectID})
	if err != nil {
		return dto.ClassAssignmentResponse{}, err
	}
	if len(subjects) == 0 {
		return dto.ClassAssignmentResponse{}, ErrSubjectNotFound
	}

	assignment := models.ClassAssignment{
		TeacherID: payload.TeacherID,
		ClassID:   payload.ClassID,
		SubjectID: payload.SubjectID,
		IsActive:  true,
	}

	if err := s.assignments.Create(ctx, &assignment); err != nil {
		return dto.ClassAssignmentResponse{}, err
	}

	return dto.NewClassAssignmentResponse(assignment), nil
}
