package repository

import (
	"context"

	"financas/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SavingsGoalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSavingsGoalRepository(db *pgxpool.Pool, logger *zap.Logger) *SavingsGoalRepository {
	return &SavingsGoalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SavingsGoalRepository) ListByUser(ctx context.Context, userID int64) ([]models.SavingsGoal, error) {
	query := squirrel.Select("id", "user_id", "name", "target_amount", "current_amount", "deadline").
		From("savings_goals").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("deadline ASC").
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

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (r *SavingsGoalRepository) GetByID(ctx context.Context, id int64) (*models.SavingsGoal, error) {
	query := squirrel.Select("id", "user_id", "name", "target_amount", "current_amount", "deadline").
		From("savings_goals").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var g models.SavingsGoal
	err = r.db.QueryRow(ctx, sql, args...).Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline)
	if err != nil {
		return nil, wrapNoRows(err)
	}

	return &g, nil
}

func (r *SavingsGoalRepository) Create(ctx context.Context, goal *models.SavingsGoal) error {
	query := squirrel.Insert("savings_goals").
		Columns("user_id", "name", "target_amount", "current_amount", "deadline").
		Values(goal.UserID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.Deadline).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&goal.ID)
}

// Update writes only the provided columns.
func (r *SavingsGoalRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.SavingsGoal, error) {
	query := squirrel.Update("savings_goals").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, user_id, name, target_amount, current_amount, deadline").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var g models.SavingsGoal
	err = r.db.QueryRow(ctx, sql, args...).Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline)
	if err != nil {
		return nil, wrapNoRows(err)
	}

	return &g, nil
}

func (r *SavingsGoalRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("savings_goals").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
