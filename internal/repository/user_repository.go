package repository

import (
	"context"

	"financas/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) GetByExternalID(ctx context.Context, externalID, provider string) (*models.User, error) {
	query := squirrel.Select("id", "external_id", "provider", "email", "display_name", "created_at").
		From("users").
		Where(squirrel.Eq{"external_id": externalID, "provider": provider}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.ExternalID, &user.Provider, &user.Email, &user.DisplayName, &user.CreatedAt,
	)
	if err != nil {
		return nil, wrapNoRows(err)
	}

	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := squirrel.Select("id", "external_id", "provider", "email", "display_name", "created_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.ExternalID, &user.Provider, &user.Email, &user.DisplayName, &user.CreatedAt,
	)
	if err != nil {
		return nil, wrapNoRows(err)
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("external_id", "provider", "email", "display_name").
		Values(user.ExternalID, user.Provider, user.Email, user.DisplayName).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, email, displayName string) error {
	query := squirrel.Update("users").
		Set("email", email).
		Set("display_name", displayName).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
