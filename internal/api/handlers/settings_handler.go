package handlers

import (
	"financas/internal/dto"
	"financas/internal/service"
	"financas/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	logger          *zap.Logger
}

func NewSettingsHandler(settingsService *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	resp, err := h.settingsService.Get(c.Context(), userID)
	if err != nil {
		h.logger.Error("Fetching user settings failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch settings",
		})
	}
	return c.JSON(resp)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.Settings
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.settingsService.Update(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Updating user settings failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update settings",
		})
	}
	return c.JSON(resp)
}
