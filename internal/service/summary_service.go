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

type SummaryService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewSummaryService(txRepo *repository.TransactionRepository, logger *zap.Logger) *SummaryService {
	return &SummaryService{
		txRepo: txRepo,
		logger: logger,
	}
}

// ActivitySummary aggregates one user's activity over [start, end]; a nil
// bound falls back to the current calendar month. The whole input collection
// is fetched before any aggregation runs, so a store failure aborts the
// request instead of producing a partial summary.
func (s *SummaryService) ActivitySummary(ctx context.Context, userID int64, start, end *time.Time, now time.Time) (*dto.SummaryResponse, error) {
	from, to := resolveRange(start, end, now)

	txs, err := s.txRepo.ListByRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	// Upcoming payments look past the range end: every future expense counts.
	upcoming, err := s.txRepo.ListUpcoming(ctx, userID, dateOnly(now), 10)
	if err != nil {
		// A failed future-payments fetch degrades to an empty list; the
		// summary still renders.
		s.logger.Warn("Upcoming payments fetch failed", zap.Error(err))
		upcoming = nil
	}

	summary := finance.Summarize(txs)
	payments := finance.UpcomingPayments(upcoming, now)

	resp := &dto.SummaryResponse{
		SaldoAtual:           summary.Balance,
		DespesasMes:          summary.TotalExpense,
		ReceitasMes:          summary.TotalIncome,
		ProximosPagamentos:   make([]dto.UpcomingPayment, 0, len(payments)),
		DespesasPorCategoria: mapBreakdown(summary.ByCategory),
		UltimasTransacoes:    make([]dto.RecentTransaction, 0, len(summary.Recent)),
	}
	for _, p := range payments {
		resp.ProximosPagamentos = append(resp.ProximosPagamentos, dto.UpcomingPayment{
			ID:        p.ID,
			Descricao: p.Descricao,
			Valor:     p.Valor,
			Data:      p.Data.Format(dateLayout),
			Categoria: p.Categoria,
		})
	}
	for _, r := range summary.Recent {
		resp.UltimasTransacoes = append(resp.UltimasTransacoes, dto.RecentTransaction{
			ID:        r.ID,
			Descricao: r.Descricao,
			Valor:     r.Valor,
			Tipo:      r.Tipo,
			Data:      r.Data.Format(dateLayout),
		})
	}

	return resp, nil
}

// PublicSummary is the read-only variant used by the /ws endpoints. Unlike
// the dashboard summary it buckets uncategorized expenses under
// "Sem categoria".
func (s *SummaryService) PublicSummary(ctx context.Context, userID int64, start, end *time.Time, now time.Time) (*dto.PublicSummaryResponse, error) {
	from, to := resolveRange(start, end, now)

	txs, err := s.txRepo.ListByRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	summary := finance.Summarize(txs)
	breakdown := finance.CategoryBreakdown(txs, summary.TotalExpense, "Sem categoria")

	return &dto.PublicSummaryResponse{
		UserID: userID,
		Periodo: dto.Periodo{
			Inicio: from.Format(dateLayout),
			Fim:    to.Format(dateLayout),
		},
		Totais: dto.Totais{
			Receitas: summary.TotalIncome,
			Despesas: summary.TotalExpense,
			Saldo:    summary.Balance,
		},
		DespesasPorCategoria: mapBreakdown(breakdown),
	}, nil
}

// PublicTransactions lists a user's latest transactions without a session.
func (s *SummaryService) PublicTransactions(ctx context.Context, userID int64, limit int, start, end *time.Time) (*dto.PublicTransactionsResponse, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	txs, err := s.txRepo.List(ctx, userID, start, end, uint64(limit))
	if err != nil {
		return nil, err
	}

	resp := &dto.PublicTransactionsResponse{
		UserID:       userID,
		Total:        len(txs),
		Transactions: make([]dto.PublicTransaction, 0, len(txs)),
	}
	for _, t := range txs {
		tipo := "receita"
		if t.Type == models.TypeExpense {
			tipo = "despesa"
		}
		pt := dto.PublicTransaction{
			ID:        t.ID,
			Data:      t.Date.Format(dateLayout),
			Valor:     t.Amount,
			Tipo:      tipo,
			Moeda:     t.Currency,
			Descricao: t.Notes,
		}
		if t.Category != nil {
			name, colour := t.Category.Name, t.Category.Colour
			pt.Categoria = &name
			pt.CorCategoria = &colour
		}
		resp.Transactions = append(resp.Transactions, pt)
	}

	return resp, nil
}

func mapBreakdown(breakdown []finance.CategoryTotal) []dto.CategoryBreakdown {
	out := make([]dto.CategoryBreakdown, 0, len(breakdown))
	for _, c := range breakdown {
		out = append(out, dto.CategoryBreakdown{
			Categoria:   c.Categoria,
			Valor:       c.Valor,
			Percentagem: c.Percentagem,
		})
	}
	return out
}

func resolveRange(start, end *time.Time, now time.Time) (time.Time, time.Time) {
	defStart, defEnd := finance.MonthRange(now)
	from, to := defStart, defEnd
	if start != nil {
		from = *start
	}
	if end != nil {
		to = *end
	}
	return from, to
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
