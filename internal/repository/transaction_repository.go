package repository

import (
	"context"
	"time"

	"financas/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("expenses").
		Columns("user_id", "type", "amount", "currency", "category_id", "date", "notes").
		Values(tx.UserID, tx.Type, tx.Amount, tx.Currency, tx.CategoryID, tx.Date, tx.Notes).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&tx.ID, &tx.CreatedAt)
}

// List returns transactions newest first with the joined category, optionally
// bounded by an inclusive date range and a row limit.
func (r *TransactionRepository) List(ctx context.Context, userID int64, start, end *time.Time, limit uint64) ([]models.Transaction, error) {
	query := selectWithCategory().
		Where(squirrel.Eq{"e.user_id": userID}).
		OrderBy("e.date DESC", "e.created_at DESC")

	if start != nil {
		query = query.Where(squirrel.GtOrEq{"e.date": *start})
	}
	if end != nil {
		query = query.Where(squirrel.LtOrEq{"e.date": *end})
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	return r.queryTransactions(ctx, query)
}

// ListByRange returns every transaction in [start, end], both ends inclusive,
// newest first.
func (r *TransactionRepository) ListByRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Transaction, error) {
	query := selectWithCategory().
		Where(squirrel.Eq{"e.user_id": userID}).
		Where(squirrel.GtOrEq{"e.date": start}).
		Where(squirrel.LtOrEq{"e.date": end}).
		OrderBy("e.date DESC", "e.created_at DESC")

	return r.queryTransactions(ctx, query)
}

// ListUpcoming returns expense transactions on or after from, nearest first.
func (r *TransactionRepository) ListUpcoming(ctx context.Context, userID int64, from time.Time, limit uint64) ([]models.Transaction, error) {
	query := selectWithCategory().
		Where(squirrel.Eq{"e.user_id": userID, "e.type": models.TypeExpense}).
		Where(squirrel.GtOrEq{"e.date": from}).
		OrderBy("e.date ASC").
		Limit(limit)

	return r.queryTransactions(ctx, query)
}

func selectWithCategory() squirrel.SelectBuilder {
	return squirrel.Select(
		"e.id", "e.user_id", "e.type", "e.amount", "e.currency",
		"e.category_id", "e.date", "e.created_at", "e.notes",
		"c.name", "c.colour",
	).
		From("expenses e").
		LeftJoin("categories c ON c.id = e.category_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query squirrel.SelectBuilder) ([]models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func scanTransaction(rows pgx.Rows) (models.Transaction, error) {
	var (
		tx           models.Transaction
		name, colour *string
	)
	if err := rows.Scan(
		&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Currency,
		&tx.CategoryID, &tx.Date, &tx.CreatedAt, &tx.Notes,
		&name, &colour,
	); err != nil {
		return models.Transaction{}, err
	}
	if name != nil {
		ref := models.CategoryRef{Name: *name}
		if colour != nil {
			ref.Colour = *colour
		}
		tx.Category = &ref
	}
	return tx, nil
}
