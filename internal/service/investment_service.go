package service

import (
	"context"
	"strings"

	"financas/internal/dto"
	"financas/internal/models"
	"financas/internal/repository"

	"go.uber.org/zap"
)

type InvestmentService struct {
	invRepo *repository.InvestmentRepository
	logger  *zap.Logger
}

func NewInvestmentService(invRepo *repository.InvestmentRepository, logger *zap.Logger) *InvestmentService {
	return &InvestmentService{
		invRepo: invRepo,
		logger:  logger,
	}
}

func (s *InvestmentService) List(ctx context.Context, userID int64) (*dto.InvestmentsResponse, error) {
	investments, err := s.invRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.InvestmentsResponse{Investments: make([]dto.InvestmentResponse, 0, len(investments))}
	for _, inv := range investments {
		resp.Investments = append(resp.Investments, mapInvestment(inv))
	}
	return resp, nil
}

// Add records a stock position. The purchase price seeds both the average
// and the last known price until a quote refresh updates the latter.
func (s *InvestmentService) Add(ctx context.Context, userID int64, req *dto.AddInvestmentRequest) (*dto.InvestmentResponse, error) {
	if req.Symbol == "" || req.Quantity <= 0 || req.PurchasePrice <= 0 {
		return nil, ErrValidation
	}

	inv := &models.Investment{
		UserID:    userID,
		Symbol:    strings.ToUpper(req.Symbol),
		Quantity:  req.Quantity,
		AvgPrice:  req.PurchasePrice,
		LastPrice: req.PurchasePrice,
		Market:    "stock",
		Currency:  "USD",
	}
	if err := s.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	resp := mapInvestment(*inv)
	return &resp, nil
}

func (s *InvestmentService) UpdateQuantity(ctx context.Context, userID, investmentID int64, req *dto.UpdateInvestmentRequest) error {
	if req.Quantity == nil {
		return ErrValidation
	}
	return s.invRepo.UpdateQuantity(ctx, investmentID, userID, *req.Quantity)
}

func (s *InvestmentService) Delete(ctx context.Context, userID, investmentID int64) error {
	return s.invRepo.Delete(ctx, investmentID, userID)
}

func mapInvestment(inv models.Investment) dto.InvestmentResponse {
	return dto.InvestmentResponse{
		ID:        inv.ID,
		Symbol:    inv.Symbol,
		Quantity:  inv.Quantity,
		AvgPrice:  inv.AvgPrice,
		LastPrice: inv.LastPrice,
		Market:    inv.Market,
		Currency:  inv.Currency,
	}
}
