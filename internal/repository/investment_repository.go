package repository

import (
	"context"

	"financas/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type InvestmentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInvestmentRepository(db *pgxpool.Pool, logger *zap.Logger) *InvestmentRepository {
	return &InvestmentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *InvestmentRepository) ListByUser(ctx context.Context, userID int64) ([]models.Investment, error) {
	query := squirrel.Select("id", "user_id", "symbol", "quantity", "avg_price", "last_price", "market", "currency").
		From("investments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var investments []models.Investment
	for rows.Next() {
		var inv models.Investment
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.Symbol, &inv.Quantity, &inv.AvgPrice, &inv.LastPrice, &inv.Market, &inv.Currency); err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}

	return investments, rows.Err()
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *models.Investment) error {
	query := squirrel.Insert("investments").
		Columns("user_id", "symbol", "quantity", "avg_price", "last_price", "market", "currency").
		Values(inv.UserID, inv.Symbol, inv.Quantity, inv.AvgPrice, inv.LastPrice, inv.Market, inv.Currency).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&inv.ID)
}

func (r *InvestmentRepository) UpdateQuantity(ctx context.Context, id, userID int64, quantity int) error {
	query := squirrel.Update("investments").
		Set("quantity", quantity).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *InvestmentRepository) Delete(ctx context.Context, id, userID int64) error {
	query := squirrel.Delete("investments").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
