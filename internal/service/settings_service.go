package service

import (
	"context"
	"errors"

	"financas/internal/dto"
	"financas/internal/models"
	"financas/internal/repository"

	"go.uber.org/zap"
)

type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	logger       *zap.Logger
}

func NewSettingsService(settingsRepo *repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get returns the user's settings, or the Portuguese defaults when no row
// exists yet.
func (s *SettingsService) Get(ctx context.Context, userID int64) (*dto.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			defaults := models.DefaultSettings(userID)
			return &dto.SettingsResponse{Settings: mapSettings(defaults)}, nil
		}
		return nil, err
	}

	return &dto.SettingsResponse{Settings: mapSettings(*settings)}, nil
}

func (s *SettingsService) Update(ctx context.Context, userID int64, req *dto.Settings) (*dto.SettingsUpdatedResponse, error) {
	settings := settingsFromRequest(userID, req)

	if err := s.settingsRepo.Upsert(ctx, &settings); err != nil {
		return nil, err
	}

	return &dto.SettingsUpdatedResponse{
		Message:  "Configurações atualizadas com sucesso",
		Settings: mapSettings(settings),
	}, nil
}

// settingsFromRequest fills in the Portuguese defaults for every field the
// payload left out. Omitted notification flags default to email and push on,
// SMS off, matching a fresh account.
func settingsFromRequest(userID int64, req *dto.Settings) models.UserSettings {
	return models.UserSettings{
		UserID:             userID,
		Telefone:           req.Telefone,
		DataNascimento:     req.DataNascimento,
		Endereco:           req.Endereco,
		Cidade:             req.Cidade,
		CodigoPostal:       req.CodigoPostal,
		Pais:               defaultString(req.Pais, "Portugal"),
		Moeda:              defaultString(req.Moeda, "EUR"),
		Idioma:             defaultString(req.Idioma, "pt-PT"),
		Tema:               defaultString(req.Tema, "claro"),
		NotificacoesEmail:  defaultBool(req.Notificacoes.Email, true),
		NotificacoesSMS:    defaultBool(req.Notificacoes.SMS, false),
		NotificacoesPush:   defaultBool(req.Notificacoes.Push, true),
		NivelPrivacidade:   defaultString(req.NivelPrivacidade, "normal"),
		RendaMensal:        req.RendaMensal,
		MetaPoupancaMensal: req.MetaPoupancaMensal,
		FundoEmergencia:    req.FundoEmergencia,
	}
}

func mapSettings(s models.UserSettings) dto.Settings {
	return dto.Settings{
		Telefone:       s.Telefone,
		DataNascimento: s.DataNascimento,
		Endereco:       s.Endereco,
		Cidade:         s.Cidade,
		CodigoPostal:   s.CodigoPostal,
		Pais:           s.Pais,
		Moeda:          s.Moeda,
		Idioma:         s.Idioma,
		Tema:           s.Tema,
		Notificacoes: dto.Notificacoes{
			Email: boolPtr(s.NotificacoesEmail),
			SMS:   boolPtr(s.NotificacoesSMS),
			Push:  boolPtr(s.NotificacoesPush),
		},
		NivelPrivacidade:   s.NivelPrivacidade,
		RendaMensal:        s.RendaMensal,
		MetaPoupancaMensal: s.MetaPoupancaMensal,
		FundoEmergencia:    s.FundoEmergencia,
	}
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func boolPtr(v bool) *bool {
	return &v
}
