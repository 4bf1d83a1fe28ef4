package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/waritk/gradtrack-api/internal/models"
)

// ThesisRepository exposes persistence helpers for thesis progress records.
type ThesisRepository interface {
	GetByStudent(ctx context.Context, studentID string) (models.ThesisProgress, error)
	Upsert(ctx context.Context, studentID string, updates map[string]interface{}) (bool, error)
}

type thesisRepository struct {
	db *gorm.DB
}

// NewThesisRepository constructs the repository implementation.
func NewThesisRepository(db *gorm.DB) ThesisRepository {
	return &thesisRepository{db: db}
}

func (r *thesisRepository) GetByStudent(ctx context.Context, studentID string) (models.ThesisProgress, error) {
	var progress models.ThesisProgress
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&progress).Error
	if err != nil {
		return models.ThesisProgress{}, err
	}

	return progress, nil
}

// Upsert ensures exactly one progress row exists for the student, applying
// updates as field-level overwrites. The write itself is a single
// INSERT ... ON CONFLICT (student_id) DO UPDATE evaluated atomically by the
// store; the preceding count only decides whether the caller reports the
// record as created or updated.
func (r *thesisRepository) Upsert(ctx context.Context, studentID string, updates map[string]interface{}) (bool, error) {
	var existing int64
	err := r.db.WithContext(ctx).
		Model(&models.ThesisProgress{}).
		Where("student_id = ?", studentID).
		Count(&existing).Error
	if err != nil {
		return false, err
	}

	// An empty patch against an existing row is a no-op, not a reset.
	if existing > 0 && len(updates) == 0 {
		return false, nil
	}

	now := time.Now()

	insert := map[string]interface{}{
		"student_id": studentID,
		"created_at": now,
		"updated_at": now,
	}
	assignments := map[string]interface{}{
		"updated_at": now,
	}
	for column, value := range updates {
		insert[column] = value
		assignments[column] = value
	}

	err = r.db.WithContext(ctx).
		Model(&models.ThesisProgress{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(insert).Error
	if err != nil {
		return false, err
	}

	return existing == 0, nil
}
