package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/noah-isme/sekolah-go-api/internal/dto"
	"github.com/noah-isme/sekolah-go-api/internal/models"
	"github.com/noah-isme/sekolah-go-api/internal/repository"
)

// ErrDuplicateRecord is returned when a mark or attendance row already exists for
// the same student, subject and date. The store constraint decides; the service
// never pre-checks.
var ErrDuplicateRecord = errors.New("record already exists for this student, subject and date")

// RecordService lets assigned teachers write marks, attendance and behavior
// facts about students.
type RecordService interface {
	AddMark(ctx context.Context, actor models.User, payload dto.MarkCreateRequest) (dto.MarkResponse, error)
	RecordAttendance(ctx context.Context, actor models.User, payload dto.AttendanceCreateRequest) (dto.AttendanceResponse, error)
	AddBehavior(ctx context.Context, actor models.User, payload dto.BehaviorCreateRequest) (dto.BehaviorResponse, error)
}

type recordService struct {
	records     repository.RecordRepository
	students    repository.StudentRepository
	teachers    repository.TeacherRepository
	assignments repository.ClassAssignmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
	now         func() time.Time
}

// NewRecordService constructs the record service.
func NewRecordService(records repository.RecordRepository, students repository.StudentRepository, teachers repository.TeacherRepository, assignments repository.ClassAssignmentRepository, validate *validator.Validate, logger zerolog.Logger) RecordService {
	return &recordService{
		records:     records,
		students:    students,
		teachers:    teachers,
		assignments: assignments,
		validator:   validate,
		logger:      logger.With().Str("component", "record_service").Logger(),
		now:         time.Now,
	}
}

func (s *recordService) AddMark(ctx context.Context, actor models.User, payload dto.MarkCreateRequest) (dto.MarkResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.MarkResponse{}, err
	}

	teacher, student, err := s.resolveSubjectAccess(ctx, actor, payload.StudentID, payload.SubjectID)
	if err != nil {
		return dto.MarkResponse{}, err
	}

	date, err := s.parseDate(payload.Date)
	if err != nil {
		return dto.MarkResponse{}, err
	}

	mark := models.Mark{
		StudentID: student.ID,
		SubjectID: payload.SubjectID,
		TeacherID: teacher.ID,
		Score:     payload.Score,
		Date:      date,
		IsActive:  true,
	}

	if err := s.records.CreateMark(ctx, &mark); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.MarkResponse{}, ErrDuplicateRecord
		}
		return dto.MarkResponse{}, err
	}

	return dto.NewMarkResponse(mark), nil
}

func (s *recordService) RecordAttendance(ctx context.Context, actor models.User, payload dto.AttendanceCreateRequest) (dto.AttendanceResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AttendanceResponse{}, err
	}

	teacher, student, err := s.resolveSubjectAccess(ctx, actor, payload.StudentID, payload.SubjectID)
	if err != nil {
		return dto.AttendanceResponse{}, err
	}

	date, err := s.parseDate(payload.Date)
	if err != nil {
		return dto.AttendanceResponse{}, err
	}

	attendance := models.Attendance{
		StudentID: student.ID,
		SubjectID: payload.SubjectID,
		TeacherID: teacher.ID,
		Status:    payload.Status,
		Date:      date,
		IsActive:  true,
	}

	if err := s.records.CreateAttendance(ctx, &attendance); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.AttendanceResponse{}, ErrDuplicateRecord
		}
		return dto.AttendanceResponse{}, err
	}

	return dto.NewAttendanceResponse(attendance), nil
}

func (s *recordService) AddBehavior(ctx context.Context, actor models.User, payload dto.BehaviorCreateRequest) (dto.BehaviorResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.BehaviorResponse{}, err
	}

	teacher, student, err := s.resolveClassAccess(ctx, actor, payload.StudentID)
	if err != nil {
		return dto.BehaviorResponse{}, err
	}

	date, err := s.parseDate(payload.Date)
	if err != nil {
		return dto.BehaviorResponse{}, err
	}

	behavior := models.Behavior{
		StudentID: student.ID,
		TeacherID: teacher.ID,
		Remarks:   payload.Remarks,
		Date:      date,
		IsActive:  true,
	}

	if err := s.records.CreateBehavior(ctx, &behavior); err != nil {
		return dto.BehaviorResponse{}, err
	}

	return dto.NewBehaviorResponse(behavior), nil
}

// resolveSubjectAccess loads the acting teacher and target student, then checks
// an active assignment covering the student's class and the subject.
func (s *recordService) resolveSubjectAccess(ctx context.Context, actor models.User, studentID, subjectID uint) (models.Teacher, models.Student, error) {
	teacher, student, err := s.resolveParticipants(ctx, actor, studentID)
	if err != nil {
		return models.Teacher{}, models.Student{}, err
	}

	if student.ClassID == nil {
		return models.Teacher{}, models.Student{}, ErrNotAssignedToClass
	}

	assigned, err := s.assignments.ExistsForClassSubject(ctx, teacher.ID, *student.ClassID, subjectID)
	if err != nil {
		return models.Teacher{}, models.Student{}, err
	}
	if !assigned {
		return models.Teacher{}, models.Student{}, ErrNotAssignedToClass
	}

	return teacher, student, nil
}

// resolveClassAccess is the weaker gate used for behavior remarks: any active
// assignment for the student's class suffices, regardless of subject.
func (s *recordService) resolveClassAccess(ctx context.Context, actor models.User, studentID uint) (models.Teacher, models.Student, error) {
	teacher, student, err := s.resolveParticipants(ctx, actor, studentID)
	if err != nil {
		return models.Teacher{}, models.Student{}, err
	}

	if student.ClassID == nil {
		return models.Teacher{}, models.Student{}, ErrNotAssignedToClass
	}

	assigned, err := s.assignments.ExistsForClass(ctx, teacher.ID, *student.ClassID)
	if err != nil {
		return models.Teacher{}, models.Student{}, err
	}
	if !assigned {
		return models.Teacher{}, models.Student{}, ErrNotAssignedToClass
	}

	return teacher, student, nil
}

func (s *recordService) resolveParticipants(ctx context.Context, actor models.User, studentID uint) (models.Teacher, models.Student, error) {
	teacher, err := s.teachers.FindByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Teacher{}, models.Student{}, ErrTeacherNotFound
		}
		return models.Teacher{}, models.Student{}, err
	}

	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Teacher{}, models.Student{}, ErrStudentNotFound
		}
		return models.Teacher{}, models.Student{}, err
	}

	return teacher, student, nil
}

func (s *recordService) parseDate(value string) (datatypes.Date, error) {
	if value == "" {
		return datatypes.Date(s.now()), nil
	}

	parsed, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date: %w", err)
	}

	return datatypes.Date(parsed), nil
}
