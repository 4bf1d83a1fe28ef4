package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/waritk/gradtrack-api/internal/models"
)

// StudentRepository exposes persistence helpers for student records.
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, studentID string) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, studentID string, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, studentID string) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs the repository implementation.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).
		Preload("Thesis").
		Order("student_id").
		Find(&students).Error
	if err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) Get(ctx context.Context, studentID string) (models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Preload("Thesis").
		Where("student_id = ?", studentID).
		First(&student).Error
	if err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, studentID string, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("student_id = ?", studentID).
		Updates(updates)

	return result.RowsAffected, result.Error
}

func (r *studentRepository) Delete(ctx context.Context, studentID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Delete(&models.Student{})

	return result.RowsAffected, result.Error
}
