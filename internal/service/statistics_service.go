package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/waritk/gradtrack-api/internal/dto"
	"github.com/waritk/gradtrack-api/internal/repository"
)

// StatisticsService computes the descriptive report over the student table.
// The report is recomputed from the store on every call.
type StatisticsService interface {
	Report(ctx context.Context) (dto.Statistics, error)
}

type statisticsService struct {
	repo   repository.StatisticsRepository
	logger zerolog.Logger
}

// NewStatisticsService constructs the statistics service.
func NewStatisticsService(repo repository.StatisticsRepository, logger zerolog.Logger) StatisticsService {
	return &statisticsService{
		repo:   repo,
		logger: logger.With().Str("component", "statistics_service").Logger(),
	}
}

func (s *statisticsService) Report(ctx context.Context) (dto.Statistics, error) {
	rows, err := s.repo.Scan(ctx)
	if err != nil {
		return dto.Statistics{}, err
	}

	stats := dto.Statistics{
		TotalStudents: len(rows),
		Advisors:      make([]dto.AdvisorCount, 0),
		Statuses:      make([]dto.StatusCount, 0),
	}

	var ageSum, ageCount int
	advisorIndex := make(map[string]int)
	statusIndex := make(map[string]int)

	for _, row := range rows {
		if row.Age != nil {
			ageSum += *row.Age
			ageCount++
		}

		// Buckets are appended in first-occurrence order; NULL gets its own
		// bucket, reported with a null key.
		advisorKey := keyOf(row.MainAdvisor)
		if i, ok := advisorIndex[advisorKey]; ok {
			stats.Advisors[i].Count++
		} else {
			advisorIndex[advisorKey] = len(stats.Advisors)
			stats.Advisors = append(stats.Advisors, dto.AdvisorCount{MainAdvisor: row.MainAdvisor, Count: 1})
		}

		statusKey := keyOf(row.Status)
		if i, ok := statusIndex[statusKey]; ok {
			stats.Statuses[i].Count++
		} else {
			statusIndex[statusKey] = len(stats.Statuses)
			stats.Statuses = append(stats.Statuses, dto.StatusCount{Status: row.Status, Count: 1})
		}
	}

	if ageCount > 0 {
		avg := float64(ageSum) / float64(ageCount)
		stats.AvgAge = &avg
	}

	return stats, nil
}

func keyOf(value *string) string {
	if value == nil {
		return "\x00null"
	}
	return *value
}
