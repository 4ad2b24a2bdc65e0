package handlers

import (
	"errors"

	"financas/internal/dto"
	"financas/internal/service"
	"financas/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GoalHandler struct {
	goalService *service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	resp, err := h.goalService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Listing savings goals failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list savings goals",
		})
	}
	return c.JSON(resp)
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.Create(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required fields",
			})
		}
		h.logger.Error("Creating savings goal failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create savings goal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.GoalCreatedResponse{
		Goal:    *goal,
		Message: "Objetivo de poupança criado com sucesso",
	})
}

func (h *GoalHandler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	goalID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal id",
		})
	}

	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.Update(c.Context(), userID, int64(goalID), &req)
	if err != nil {
		return h.goalError(c, err, "Updating savings goal failed", "No fields to update")
	}

	return c.JSON(dto.GoalCreatedResponse{
		Goal:    *goal,
		Message: "Objetivo de poupança atualizado com sucesso",
	})
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	goalID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal id",
		})
	}

	if err := h.goalService.Delete(c.Context(), userID, int64(goalID)); err != nil {
		return h.goalError(c, err, "Deleting savings goal failed", "Missing required fields")
	}

	return c.JSON(fiber.Map{
		"message": "Objetivo de poupança deletado com sucesso",
	})
}

func (h *GoalHandler) goalError(c *fiber.Ctx, err error, logMsg, validationMsg string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Savings goal not found",
		})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	case errors.Is(err, service.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationMsg,
		})
	}
	h.logger.Error(logMsg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": logMsg,
	})
}
