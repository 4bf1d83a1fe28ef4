package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/waritk/gradtrack-api/internal/models"
)

// CourseRepository exposes persistence helpers for course enrollments.
type CourseRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.CourseEnrollment, error)
	Create(ctx context.Context, enrollment *models.CourseEnrollment) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository constructs the repository implementation.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) ListByStudent(ctx context.Context, studentID string) ([]models.CourseEnrollment, error) {
	enrollments := make([]models.CourseEnrollment, 0)
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("course_code").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

func (r *courseRepository) Create(ctx context.Context, enrollment *models.CourseEnrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *courseRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CourseEnrollment{}).
		Where("id = ?", id).
		Updates(updates)

	return result.RowsAffected, result.Error
}

func (r *courseRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.CourseEnrollment{}, id)
	return result.RowsAffected, result.Error
}
