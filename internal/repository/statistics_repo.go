package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/waritk/gradtrack-api/internal/models"
)

// StudentAggregate is the projection the statistics report folds over.
type StudentAggregate struct {
	Age         *int    `gorm:"column:age"`
	MainAdvisor *string `gorm:"column:main_advisor"`
	Status      *string `gorm:"column:status"`
}

// StatisticsRepository reads the columns the aggregate report needs.
type StatisticsRepository interface {
	Scan(ctx context.Context) ([]StudentAggregate, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

// NewStatisticsRepository constructs the repository implementation.
func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

// Scan returns one row per student ordered by student_id, so group counts
// discover buckets in a stable first-occurrence order.
func (r *statisticsRepository) Scan(ctx context.Context) ([]StudentAggregate, error) {
	var rows []StudentAggregate
	err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Select("age", "main_advisor", "status").
		Order("student_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
