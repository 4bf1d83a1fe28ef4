package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/waritk/gradtrack-api/internal/dto"
	"github.com/waritk/gradtrack-api/internal/patch"
	"github.com/waritk/gradtrack-api/internal/repository"
)

// studentPatchFields is the allow-list for partial student updates. The key
// itself is not patchable; it comes from the request path.
var studentPatchFields = patch.Spec{
	"full_name":            {Column: "full_name"},
	"birth_date":           {Column: "birth_date"},
	"age":                  {Column: "age", Kind: patch.Int},
	"national_id":          {Column: "national_id"},
	"id_card_address":      {Column: "id_card_address"},
	"current_address":      {Column: "current_address"},
	"phone":                {Column: "phone"},
	"email":                {Column: "email"},
	"undergraduate_from":   {Column: "undergraduate_from"},
	"undergraduate_gpa":    {Column: "undergraduate_gpa", Kind: patch.Float},
	"professional_license": {Column: "professional_license"},
	"current_workplace":    {Column: "current_workplace"},
	"status":               {Column: "status"},
	"main_advisor":         {Column: "main_advisor"},
	"co_advisor":           {Column: "co_advisor"},
	"approval_number":      {Column: "approval_number"},
}

// StudentService orchestrates student record use cases.
type StudentService interface {
	List(ctx context.Context) ([]dto.StudentWithProgress, error)
	Get(ctx context.Context, studentID string) (dto.StudentWithProgress, error)
	Create(ctx context.Context, req dto.StudentCreateRequest) (string, error)
	Update(ctx context.Context, studentID string, body []byte) error
	Delete(ctx context.Context, studentID string) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, validator *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentWithProgress, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]dto.StudentWithProgress, 0, len(students))
	for _, student := range students {
		records = append(records, dto.NewStudentWithProgress(student))
	}

	return records, nil
}

func (s *studentService) Get(ctx context.Context, studentID string) (dto.StudentWithProgress, error) {
	student, err := s.repo.Get(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentWithProgress{}, ErrStudentNotFound
		}
		return dto.StudentWithProgress{}, err
	}

	return dto.NewStudentWithProgress(student), nil
}

func (s *studentService) Create(ctx context.Context, req dto.StudentCreateRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	student := req.Model()
	if err := s.repo.Create(ctx, &student); err != nil {
		return "", err
	}

	s.logger.Info().Str("student_id", student.StudentID).Msg("student created")
	return student.StudentID, nil
}

func (s *studentService) Update(ctx context.Context, studentID string, body []byte) error {
	if strings.TrimSpace(studentID) == "" {
		return ErrMissingKey
	}

	update, err := patch.Parse(body, studentPatchFields)
	if err != nil {
		return err
	}

	if update.Empty() {
		// Nothing to change; only verify the record exists.
		_, err := s.repo.Get(ctx, studentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	rows, err := s.repo.Update(ctx, studentID, update.Values())
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStudentNotFound
	}

	s.logger.Info().Str("student_id", studentID).Int("fields", update.Len()).Msg("student updated")
	return nil
}

func (s *studentService) Delete(ctx context.Context, studentID string) error {
	if strings.TrimSpace(studentID) == "" {
		return ErrMissingKey
	}

	// Deleting an absent student is a no-op; dependent enrollment and thesis
	// rows go with the student via the store's cascade rule.
	rows, err := s.repo.Delete(ctx, studentID)
	if err != nil {
		return err
	}

	s.logger.Info().Str("student_id", studentID).Int64("rows", rows).Msg("student deleted")
	return nil
}
