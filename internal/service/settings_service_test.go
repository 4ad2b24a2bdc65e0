package service

import (
	"testing"

	"financas/internal/dto"
)

func TestSettingsFromRequestDefaults(t *testing.T) {
	settings := settingsFromRequest(7, &dto.Settings{})

	if settings.Pais != "Portugal" {
		t.Errorf("Pais = %q, want %q", settings.Pais, "Portugal")
	}
	if settings.Moeda != "EUR" {
		t.Errorf("Moeda = %q, want %q", settings.Moeda, "EUR")
	}
	if settings.Idioma != "pt-PT" {
		t.Errorf("Idioma = %q, want %q", settings.Idioma, "pt-PT")
	}
	if settings.Tema != "claro" {
		t.Errorf("Tema = %q, want %q", settings.Tema, "claro")
	}
	if settings.NivelPrivacidade != "normal" {
		t.Errorf("NivelPrivacidade = %q, want %q", settings.NivelPrivacidade, "normal")
	}
}

func TestSettingsFromRequestNotificationDefaults(t *testing.T) {
	// A payload that never mentions notificacoes keeps email and push on.
	settings := settingsFromRequest(7, &dto.Settings{})

	if !settings.NotificacoesEmail {
		t.Error("NotificacoesEmail = false, want true when omitted")
	}
	if settings.NotificacoesSMS {
		t.Error("NotificacoesSMS = true, want false when omitted")
	}
	if !settings.NotificacoesPush {
		t.Error("NotificacoesPush = false, want true when omitted")
	}
}

func TestSettingsFromRequestExplicitNotificationFlags(t *testing.T) {
	off := false
	on := true
	req := &dto.Settings{
		Notificacoes: dto.Notificacoes{
			Email: &off,
			SMS:   &on,
			Push:  &off,
		},
	}

	settings := settingsFromRequest(7, req)

	if settings.NotificacoesEmail {
		t.Error("NotificacoesEmail = true, want explicit false to stick")
	}
	if !settings.NotificacoesSMS {
		t.Error("NotificacoesSMS = false, want explicit true to stick")
	}
	if settings.NotificacoesPush {
		t.Error("NotificacoesPush = true, want explicit false to stick")
	}
}

func TestMapSettingsNotificationsNeverNil(t *testing.T) {
	mapped := mapSettings(settingsFromRequest(7, &dto.Settings{}))

	if mapped.Notificacoes.Email == nil || mapped.Notificacoes.SMS == nil || mapped.Notificacoes.Push == nil {
		t.Fatal("mapSettings returned nil notification flags")
	}
	if !*mapped.Notificacoes.Email || *mapped.Notificacoes.SMS || !*mapped.Notificacoes.Push {
		t.Errorf("notification flags = %v/%v/%v, want true/false/true",
			*mapped.Notificacoes.Email, *mapped.Notificacoes.SMS, *mapped.Notificacoes.Push)
	}
}
