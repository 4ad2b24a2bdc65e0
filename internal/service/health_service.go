package service

import (
	"context"
	"time"

	"financas/internal/dto"
	"financas/internal/finance"
	"financas/internal/models"
	"financas/internal/repository"

	"go.uber.org/zap"
)

type HealthService struct {
	txRepo   *repository.TransactionRepository
	goalRepo *repository.SavingsGoalRepository
	invRepo  *repository.InvestmentRepository
	logger   *zap.Logger
}

func NewHealthService(
	txRepo *repository.TransactionRepository,
	goalRepo *repository.SavingsGoalRepository,
	invRepo *repository.InvestmentRepository,
	logger *zap.Logger,
) *HealthService {
	return &HealthService{
		txRepo:   txRepo,
		goalRepo: goalRepo,
		invRepo:  invRepo,
		logger:   logger,
	}
}

// FinancialHealth scores the current month: income and expenses from the
// month's transactions, the emergency fund from savings goal balances and the
// invested value from the portfolio. Debts are not tracked yet and stay zero.
func (s *HealthService) FinancialHealth(ctx context.Context, userID int64, now time.Time) (*dto.HealthResponse, error) {
	start, end := finance.MonthRange(now)

	txs, err := s.txRepo.ListByRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	investments, err := s.invRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var in finance.HealthInput
	for _, t := range txs {
		switch t.Type {
		case models.TypeIncome:
			in.RendaMensal += t.Amount
		case models.TypeExpense:
			in.DespesasMensais += t.Amount
		}
	}
	for _, g := range goals {
		in.FundoEmergencia += g.CurrentAmount
	}
	for _, inv := range investments {
		in.Investimentos += inv.MarketValue()
	}

	h := finance.ComputeHealth(in)

	return &dto.HealthResponse{
		HealthScore: h.Score,
		Metrics: dto.HealthMetrics{
			RendaMensal:     in.RendaMensal,
			DespesasMensais: in.DespesasMensais,
			PoupancaMensal:  h.PoupancaMensal,
			FundoEmergencia: in.FundoEmergencia,
			Dividas:         in.Dividas,
			Investimentos:   in.Investimentos,
		},
		TaxaPoupanca:         finance.Round1(h.TaxaPoupanca),
		MesesFundoEmergencia: finance.Round1(h.MesesFundoEmergencia),
		TaxaEndividamento:    finance.Round1(h.TaxaEndividamento),
	}, nil
}
