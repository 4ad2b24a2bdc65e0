package repository

import (
	"context"

	"financas/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SettingsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSettingsRepository(db *pgxpool.Pool, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
	}
}

var settingsColumns = []string{
	"user_id", "telefone", "data_nascimento", "endereco", "cidade", "codigo_postal",
	"pais", "moeda", "idioma", "tema",
	"notificacoes_email", "notificacoes_sms", "notificacoes_push",
	"nivel_privacidade", "renda_mensal", "meta_poupanca_mensal", "fundo_emergencia",
}

func (r *SettingsRepository) Get(ctx context.Context, userID int64) (*models.UserSettings, error) {
	query := squirrel.Select(settingsColumns...).
		From("user_settings").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s models.UserSettings
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.UserID, &s.Telefone, &s.DataNascimento, &s.Endereco, &s.Cidade, &s.CodigoPostal,
		&s.Pais, &s.Moeda, &s.Idioma, &s.Tema,
		&s.NotificacoesEmail, &s.NotificacoesSMS, &s.NotificacoesPush,
		&s.NivelPrivacidade, &s.RendaMensal, &s.MetaPoupancaMensal, &s.FundoEmergencia,
	)
	if err != nil {
		return nil, wrapNoRows(err)
	}

	return &s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *models.UserSettings) error {
	query := squirrel.Insert("user_settings").
		Columns(settingsColumns...).
		Values(
			s.UserID, s.Telefone, s.DataNascimento, s.Endereco, s.Cidade, s.CodigoPostal,
			s.Pais, s.Moeda, s.Idioma, s.Tema,
			s.NotificacoesEmail, s.NotificacoesSMS, s.NotificacoesPush,
			s.NivelPrivacidade, s.RendaMensal, s.MetaPoupancaMensal, s.FundoEmergencia,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			telefone = EXCLUDED.telefone,
			data_nascimento = EXCLUDED.data_nascimento,
			endereco = EXCLUDED.endereco,
			cidade = EXCLUDED.cidade,
			codigo_postal = EXCLUDED.codigo_postal,
			pais = EXCLUDED.pais,
			moeda = EXCLUDED.moeda,
			idioma = EXCLUDED.idioma,
			tema = EXCLUDED.tema,
			notificacoes_email = EXCLUDED.notificacoes_email,
			notificacoes_sms = EXCLUDED.notificacoes_sms,
			notificacoes_push = EXCLUDED.notificacoes_push,
			nivel_privacidade = EXCLUDED.nivel_privacidade,
			renda_mensal = EXCLUDED.renda_mensal,
			meta_poupanca_mensal = EXCLUDED.meta_poupanca_mensal,
			fundo_emergencia = EXCLUDED.fundo_emergencia`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
