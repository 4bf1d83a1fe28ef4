package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/waritk/gradtrack-api/internal/dto"
	"github.com/waritk/gradtrack-api/internal/patch"
	"github.com/waritk/gradtrack-api/internal/service"
	"github.com/waritk/gradtrack-api/internal/utils"
)

// CourseHandler wires the course enrollment endpoints.
type CourseHandler struct {
	service service.CourseService
	logger  zerolog.Logger
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(service service.CourseService, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		logger:  logger.With().Str("component", "course_handler").Logger(),
	}
}

// Register attaches enrollment routes to the router group.
func (h *CourseHandler) Register(router fiber.Router) {
	router.Get("/students/:id/courses", h.listByStudent)
	router.Post("/courses", h.create)
	router.Put("/courses/:id", h.update)
	router.Delete("/courses/:id", h.delete)
}

func (h *CourseHandler) listByStudent(c *fiber.Ctx) error {
	enrollments, err := h.service.ListByStudent(c.Context(), c.Params("id"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list course enrollments")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(enrollments)
}

func (h *CourseHandler) create(c *fiber.Ctx) error {
	var payload dto.CourseCreateRequest
	if err := decodeStrict(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create course enrollment")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendCreated(c, "Course enrollment created", id)
}

func (h *CourseHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	if err := h.service.Update(c.Context(), id, c.Body()); err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "Course enrollment not found")
		case patch.IsFieldError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update course enrollment")
			return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return utils.SendMessage(c, fiber.StatusOK, "Course enrollment updated")
}

func (h *CourseHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete course enrollment")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SendMessage(c, fiber.StatusOK, "Course enrollment deleted")
}
