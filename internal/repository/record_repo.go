package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/sekolah-go-api/internal/models"
)

// RecordRepository handles persistence for marks, attendance and behavior facts.
// Duplicate inserts against the composite unique indexes surface as
// gorm.ErrDuplicatedKey; callers map that to a conflict instead of pre-checking.
type RecordRepository interface {
	CreateMark(ctx context.Context, mark *models.Mark) error
	ListMarksByStudent(ctx context.Context, studentID uint) ([]models.Mark, error)
	CreateAttendance(ctx context.Context, attendance *models.Attendance) error
	ListAttendanceByStudent(ctx context.Context, studentID uint) ([]models.Attendance, error)
	CreateBehavior(ctx context.Context, behavior *models.Behavior) error
	ListBehaviorByStudent(ctx context.Context, studentID uint) ([]models.Behavior, error)
}

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository constructs a repository backed by GORM.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) CreateMark(ctx context.Context, mark *models.Mark) error {
	return r.db.WithContext(ctx).Create(mark).Error
}

func (r *recordRepository) ListMarksByStudent(ctx context.Context, studentID uint) ([]models.Mark, error) {
	var marks []models.Mark
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC").
		Find(&marks).Error; err != nil {
		return nil, err
	}
	return marks, nil
}

func (r *recordRepository) CreateAttendance(ctx context.Context, attendance *models.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *recordRepository) ListAttendanceByStudent(ctx context.Context, studentID uint) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) CreateBehavior(ctx context.Context, behavior *models.Behavior) error {
	return r.db.WithContext(ctx).Create(behavior).Error
}

func (r *recordRepository) ListBehaviorByStudent(ctx context.Context, studentID uint) ([]models.Behavior, error) {
	var records []models.Behavior
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
