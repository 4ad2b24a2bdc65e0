package handlers

import (
	"time"

	"financas/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PublicHandler serves the read-only /ws endpoints that expose a user's data
// without a session.
type PublicHandler struct {
	summaryService *service.SummaryService
	goalService    *service.GoalService
	logger         *zap.Logger
}

func NewPublicHandler(summaryService *service.SummaryService, goalService *service.GoalService, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{
		summaryService: summaryService,
		goalService:    goalService,
		logger:         logger,
	}
}

func (h *PublicHandler) Transactions(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}
	limit := c.QueryInt("limit", 20)

	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
	}

	resp, err := h.summaryService.PublicTransactions(c.Context(), int64(userID), limit, start, end)
	if err != nil {
		h.logger.Error("Public transaction listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}
	return c.JSON(resp)
}

func (h *PublicHandler) Summary(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
	}

	resp, err := h.summaryService.PublicSummary(c.Context(), int64(userID), start, end, time.Now())
	if err != nil {
		h.logger.Error("Public summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build summary",
		})
	}
	return c.JSON(resp)
}

func (h *PublicHandler) SavingsGoals(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	resp, err := h.goalService.PublicGoals(c.Context(), int64(userID))
	if err != nil {
		h.logger.Error("Public goal listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list savings goals",
		})
	}
	return c.JSON(resp)
}
