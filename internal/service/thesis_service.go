package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/waritk/gradtrack-api/internal/patch"
	"github.com/waritk/gradtrack-api/internal/repository"
)

var thesisPatchFields = patch.Spec{
	"proposal_exam_date": {Column: "proposal_exam_date"},
	"proposal_status":    {Column: "proposal_status"},
	"defense_exam_date":  {Column: "defense_exam_date"},
	"defense_status":     {Column: "defense_status"},
	"publication_status": {Column: "publication_status"},
	"graduation_notice":  {Column: "graduation_notice"},
}

// ThesisService applies milestone patches to a student's single progress
// record, creating it on first touch.
type ThesisService interface {
	Upsert(ctx context.Context, studentID string, body []byte) (bool, error)
}

type thesisService struct {
	repo   repository.ThesisRepository
	logger zerolog.Logger
}

// NewThesisService constructs the thesis progress service.
func NewThesisService(repo repository.ThesisRepository, logger zerolog.Logger) ThesisService {
	return &thesisService{
		repo:   repo,
		logger: logger.With().Str("component", "thesis_service").Logger(),
	}
}

// Upsert returns true when a new progress record was created. Fields absent
// from body stay untouched on an existing record; fields sent as null are
// cleared.
func (s *thesisService) Upsert(ctx context.Context, studentID string, body []byte) (bool, error) {
	if strings.TrimSpace(studentID) == "" {
		return false, ErrMissingKey
	}

	update, err := patch.Parse(body, thesisPatchFields)
	if err != nil {
		return false, err
	}

	created, err := s.repo.Upsert(ctx, studentID, update.Values())
	if err != nil {
		return false, err
	}

	s.logger.Info().
		Str("student_id", studentID).
		Bool("created", created).
		Int("fields", update.Len()).
		Msg("thesis progress upserted")

	return created, nil
}
