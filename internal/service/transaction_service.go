package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"financas/internal/dto"
	"financas/internal/models"
	"financas/internal/repository"

	"go.uber.org/zap"
)

type TransactionService struct {
	txRepo  *repository.TransactionRepository
	catRepo *repository.CategoryRepository
	logger  *zap.Logger
}

func NewTransactionService(txRepo *repository.TransactionRepository, catRepo *repository.CategoryRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo:  txRepo,
		catRepo: catRepo,
		logger:  logger,
	}
}

func (s *TransactionService) List(ctx context.Context, userID int64, limit int, start, end *time.Time) (*dto.TransactionsResponse, error) {
	if limit <= 0 {
		limit = 50
	}

	txs, err := s.txRepo.List(ctx, userID, start, end, uint64(limit))
	if err != nil {
		return nil, err
	}

	resp := &dto.TransactionsResponse{Transactions: make([]dto.TransactionRow, 0, len(txs))}
	for _, t := range txs {
		resp.Transactions = append(resp.Transactions, mapTransactionRow(t))
	}
	return resp, nil
}

// Add stores a new transaction. The external tipo values map onto the stored
// type (despesa -> expense, anything else -> income) and the category is
// created lazily by name when it does not exist yet for this user.
func (s *TransactionService) Add(ctx context.Context, userID int64, req *dto.AddTransactionRequest) (*dto.TransactionRow, error) {
	if req.Descricao == "" || req.Valor == 0 || req.Tipo == "" || req.Data == "" {
		return nil, ErrValidation
	}

	txType := models.TypeIncome
	if req.Tipo == "despesa" {
		txType = models.TypeExpense
	}

	date, err := time.Parse(dateLayout, req.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", ErrValidation)
	}

	var categoryID *int64
	var categoryRef *models.CategoryRef
	if req.Categoria != "" {
		category, err := s.getOrCreateCategory(ctx, userID, req.Categoria)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
		categoryRef = &models.CategoryRef{Name: category.Name, Colour: category.Colour}
	}

	notes := req.Descricao
	if req.Notas != "" {
		notes = strings.TrimSpace(notes + "\n" + req.Notas)
	}

	currency := req.Moeda
	if currency == "" {
		currency = "EUR"
	}

	tx := &models.Transaction{
		UserID:     userID,
		Type:       txType,
		Amount:     req.Valor,
		Currency:   currency,
		CategoryID: categoryID,
		Date:       date,
		Notes:      notes,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	tx.Category = categoryRef

	row := mapTransactionRow(*tx)
	return &row, nil
}

// getOrCreateCategory looks a category up by name and creates it with the
// default colour when missing. Two requests may race on the insert; the loser
// gets a duplicate-key error, re-queries and uses the winner's row.
func (s *TransactionService) getOrCreateCategory(ctx context.Context, userID int64, name string) (*models.Category, error) {
	category, err := s.catRepo.GetByName(ctx, userID, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	category = &models.Category{
		UserID: userID,
		Name:   name,
		Colour: models.DefaultColour,
	}
	err = s.catRepo.Create(ctx, category)
	if err == nil {
		return category, nil
	}
	if repository.IsDuplicateKey(err) {
		s.logger.Debug("Category insert lost a race, re-reading",
			zap.Int64("user_id", userID),
			zap.String("name", name),
		)
		return s.catRepo.GetByName(ctx, userID, name)
	}
	return nil, err
}

func mapTransactionRow(t models.Transaction) dto.TransactionRow {
	row := dto.TransactionRow{
		ID:         t.ID,
		UserID:     t.UserID,
		Type:       string(t.Type),
		Amount:     t.Amount,
		Currency:   t.Currency,
		CategoryID: t.CategoryID,
		Date:       t.Date.Format(dateLayout),
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		Notes:      t.Notes,
	}
	if t.Category != nil {
		row.Categories = &dto.CategoryRef{Name: t.Category.Name, Colour: t.Category.Colour}
	}
	return row
}
