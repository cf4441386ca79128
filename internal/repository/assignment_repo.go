package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/sekolah-go-api/internal/models"
)

// ClassAssignmentRepository handles persistence for teacher/class/subject links.
type ClassAssignmentRepository interface {
	Create(ctx context.Context, assignment *models.ClassAssignment) error
	ListByTeacher(ctx context.Context, teacherID uint) ([]models.ClassAssignment, error)
	ExistsForClass(ctx context.Context, teacherID, classID uint) (bool, error)
	ExistsForClassSubject(ctx context.Context, teacherID, classID, subjectID uint) (bool, error)
}

type classAssignmentRepository struct {
	db *gorm.DB
}

// NewClassAssignmentRepository constructs a repository backed by GORM.
func NewClassAssignmentRepository(db *gorm.DB) ClassAssignmentRepository {
	return &classAssignmentRepository{db: db}
}

func (r *classAssignmentRepository) Create(ctx context.Context, assignment *models.ClassAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *classAssignmentRepository) ListByTeacher(ctx context.Context, teacherID uint) ([]models.ClassAssignment, error) {
	var assignments []models.ClassAssignment
	if err := r.db.WithContext(ctx).
		Where("teacher_id = ? AND is_active = ?", teacherID, true).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *classAssignmentRepository) ExistsForClass(ctx context.Context, teacherID, classID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClassAssignment{}).
		Where("teacher_id = ? AND class_id = ? AND is_active = ?", teacherID, classID, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *classAssignmentRepository) ExistsForClassSubject(ctx context.Context, teacherID, classID, subjectID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClassAssignment{}).
		Where("teacher_id = ? AND class_id = ? AND subject_id = ? AND is_active = ?", teacherID, classID, subjectID, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
