package handlers

import (
	"errors"
	"time"

	"financas/internal/dto"
	"financas/internal/service"
	"financas/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
	categoryService    *service.CategoryService
	logger             *zap.Logger
}

func NewTransactionHandler(transactionService *service.TransactionService, categoryService *service.CategoryService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		categoryService:    categoryService,
		logger:             logger,
	}
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	limit := c.QueryInt("limit", 50)

	start, end, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
	}

	resp, err := h.transactionService.List(c.Context(), userID, limit, start, end)
	if err != nil {
		h.logger.Error("Listing transactions failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}
	return c.JSON(resp)
}

func (h *TransactionHandler) Add(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req dto.AddTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := h.transactionService.Add(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Missing required fields",
			})
		}
		h.logger.Error("Adding transaction failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.TransactionCreatedResponse{
		Transaction: *created,
		Message:     "Transação adicionada com sucesso",
	})
}

func (h *TransactionHandler) ListCategories(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	resp, err := h.categoryService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Listing categories failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list categories",
		})
	}
	return c.JSON(resp)
}

// parseRange reads the optional start_date / end_date query params.
func parseRange(c *fiber.Ctx) (start, end *time.Time, err error) {
	if raw := c.Query("start_date"); raw != "" {
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return nil, nil, perr
		}
		end = &t
	}
	return start, end, nil
}
