package handlers

import (
	"errors"
	"fmt"
	"strings"

	"financas/internal/dto"
	"financas/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StockHandler struct {
	stockService *service.StockService
	logger       *zap.Logger
}

func NewStockHandler(stockService *service.StockService, logger *zap.Logger) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		logger:       logger,
	}
}

func (h *StockHandler) Quote(c *fiber.Ctx) error {
	symbol := c.Params("symbol")

	quote, err := h.stockService.Quote(c.Context(), symbol)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Stock symbol %s not found", strings.ToUpper(symbol)),
			})
		}
		h.logger.Error("Stock lookup failed", zap.String("symbol", symbol), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch stock data",
		})
	}
	return c.JSON(quote)
}

func (h *StockHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")

	results, err := h.stockService.Search(c.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Query parameter required",
			})
		}
		h.logger.Error("Stock search failed", zap.String("query", query), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search stocks",
		})
	}
	return c.JSON(dto.StockSearchResponse{Results: results})
}

func (h *StockHandler) DetailedQuote(c *fiber.Ctx) error {
	symbol := c.Params("symbol")

	payload, err := h.stockService.DetailedQuote(c.Context(), symbol)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfigured):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Massive API key not configured",
			})
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Stock symbol %s not found", strings.ToUpper(symbol)),
			})
		}
		h.logger.Error("Stock quote failed", zap.String("symbol", symbol), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch stock quote",
		})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}
