package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/waritk/gradtrack-api/internal/patch"
	"github.com/waritk/gradtrack-api/internal/service"
	"github.com/waritk/gradtrack-api/internal/utils"
)

// ThesisHandler wires the thesis progress upsert endpoint.
type ThesisHandler struct {
	service service.ThesisService
	logger  zerolog.Logger
}

// NewThesisHandler constructs the handler.
func NewThesisHandler(service service.ThesisService, logger zerolog.Logger) *ThesisHandler {
	return &ThesisHandler{
		service: service,
		logger:  logger.With().Str("component", "thesis_handler").Logger(),
	}
}

// Register attaches the thesis route to the router group.
func (h *ThesisHandler) Register(router fiber.Router) {
	router.Put("/thesis/:student_id", h.upsert)
}

func (h *ThesisHandler) upsert(c *fiber.Ctx) error {
	created, err := h.service.Upsert(c.Context(), c.Params("student_id"), c.Body())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingKey), patch.IsFieldError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to upsert thesis progress")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	if created {
		return utils.SendMessage(c, fiber.StatusCreated, "Thesis progress created")
	}

	return utils.SendMessage(c, fiber.StatusOK, "Thesis progress updated")
}
