package handlers

import (
	"errors"

	"financas/internal/dto"
	"financas/internal/service"
	"financas/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InvestmentHandler struct {
	investmentService *service.InvestmentService
	logger            *zap.Logger
}

func NewInvestmentHandler(investmentService *service.InvestmentService, logger *zap.Logger) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
		logger:            logger,
	}
}

func (h *InvestmentHandler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	resp, err := h.investmentService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Listing investments failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list investments",
		})
	}
	return c.JSON(resp)
}

func (h *InvestmentHandler) Add(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.AddInvestmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	investment, err := h.investmentService.Add(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required fields",
			})
		}
		h.logger.Error("Adding investment failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add investment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.InvestmentCreatedResponse{
		Message:    "Investimento adicionado com sucesso",
		Investment: *investment,
	})
}

func (h *InvestmentHandler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	investmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid investment id",
		})
	}

	var req dto.UpdateInvestmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.investmentService.UpdateQuantity(c.Context(), userID, int64(investmentID), &req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required fields",
			})
		}
		h.logger.Error("Updating investment failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update investment",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Investimento atualizado com sucesso",
	})
}

func (h *InvestmentHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	investmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid investment id",
		})
	}

	if err := h.investmentService.Delete(c.Context(), userID, int64(investmentID)); err != nil {
		h.logger.Error("Deleting investment failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete investment",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Investimento removido com sucesso",
	})
}
