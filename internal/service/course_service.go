package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/waritk/gradtrack-api/internal/dto"
	"github.com/waritk/gradtrack-api/internal/models"
	"github.com/waritk/gradtrack-api/internal/patch"
	"github.com/waritk/gradtrack-api/internal/repository"
)

var coursePatchFields = patch.Spec{
	"student_id":  {Column: "student_id"},
	"course_code": {Column: "course_code"},
	"course_name": {Column: "course_name"},
	"grade":       {Column: "grade"},
	"semester":    {Column: "semester"},
	"year":        {Column: "year"},
}

// CourseService orchestrates course enrollment use cases.
type CourseService interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.CourseEnrollment, error)
	Create(ctx context.Context, req dto.CourseCreateRequest) (uint, error)
	Update(ctx context.Context, id uint, body []byte) error
	Delete(ctx context.Context, id uint) error
}

type courseService struct {
	repo      repository.CourseRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo repository.CourseRepository, validator *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) ListByStudent(ctx context.Context, studentID string) ([]models.CourseEnrollment, error) {
	if studentID == "" {
		return nil, ErrMissingKey
	}

	return s.repo.ListByStudent(ctx, studentID)
}

func (s *courseService) Create(ctx context.Context, req dto.CourseCreateRequest) (uint, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, err
	}

	enrollment := req.Model()
	if err := s.repo.Create(ctx, &enrollment); err != nil {
		return 0, err
	}

	s.logger.Info().Str("student_id", enrollment.StudentID).Uint("id", enrollment.ID).Msg("course enrollment created")
	return enrollment.ID, nil
}

func (s *courseService) Update(ctx context.Context, id uint, body []byte) error {
	update, err := patch.Parse(body, coursePatchFields)
	if err != nil {
		return err
	}

	if update.Empty() {
		return nil
	}

	rows, err := s.repo.Update(ctx, id, update.Values())
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCourseNotFound
	}

	s.logger.Info().Uint("id", id).Int("fields", update.Len()).Msg("course enrollment updated")
	return nil
}

func (s *courseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Uint("id", id).Msg("course enrollment deleted")
	return nil
}
