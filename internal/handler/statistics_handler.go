package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/waritk/gradtrack-api/internal/service"
	"github.com/waritk/gradtrack-api/internal/utils"
)

// StatisticsHandler wires the aggregate report endpoint.
type StatisticsHandler struct {
	service service.StatisticsService
	logger  zerolog.Logger
}

// NewStatisticsHandler constructs the handler.
func NewStatisticsHandler(service service.StatisticsService, logger zerolog.Logger) *StatisticsHandler {
	return &StatisticsHandler{
		service: service,
		logger:  logger.With().Str("component", "statistics_handler").Logger(),
	}
}

// Register attaches the statistics route to the router group.
func (h *StatisticsHandler) Register(router fiber.Router) {
	router.Get("/statistics", h.report)
}

func (h *StatisticsHandler) report(c *fiber.Ctx) error {
	stats, err := h.service.Report(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to compute statistics")
		return utils.SendError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(stats)
}
