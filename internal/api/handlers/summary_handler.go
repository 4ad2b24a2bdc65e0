package handlers

import (
	"time"

	"financas/internal/service"
	"financas/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SummaryHandler struct {
	summaryService *service.SummaryService
	healthService  *service.HealthService
	logger         *zap.Logger
}

func NewSummaryHandler(summaryService *service.SummaryService, healthService *service.HealthService, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		healthService:  healthService,
		logger:         logger,
	}
}

func (h *SummaryHandler) ActivitySummary(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
	}

	resp, err := h.summaryService.ActivitySummary(c.Context(), userID, start, end, time.Now())
	if err != nil {
		h.logger.Error("Building activity summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build activity summary",
		})
	}
	return c.JSON(resp)
}

func (h *SummaryHandler) FinancialHealth(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	resp, err := h.healthService.FinancialHealth(c.Context(), userID, time.Now())
	if err != nil {
		h.logger.Error("Computing financial health failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute financial health",
		})
	}
	return c.JSON(resp)
}
