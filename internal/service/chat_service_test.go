package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"financas/internal/dto"
	"financas/pkg/config"

	"go.uber.org/zap"
)

func TestCannedReplyKeywords(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"budget keyword", "Como faço um orçamento?", "regra 50/30/20"},
		{"budget english keyword", "help me with my budget", "regra 50/30/20"},
		{"spending keyword", "quanto posso gastar por mês?", "regra 50/30/20"},
		{"saving keyword", "quero poupar mais", "Automatize suas economias"},
		{"saving synonym", "como economizar?", "Automatize suas economias"},
		{"investing keyword", "devo investir em ações?", "Diversifique sua carteira"},
		{"stocks keyword", "tell me about stocks", "Diversifique sua carteira"},
		{"debt keyword", "tenho uma dívida grande", "Snowball"},
		{"credit keyword", "cartão de crédito", "Snowball"},
		{"no keyword", "olá, tudo bem?", "O que você gostaria de saber sobre finanças?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cannedReply(tt.message)
			if !strings.Contains(got, tt.want) {
				t.Errorf("cannedReply(%q) = %q, want it to contain %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestCannedReplyCaseInsensitive(t *testing.T) {
	upper := cannedReply("PRECISO DE UM BUDGET")
	lower := cannedReply("preciso de um budget")
	if upper != lower {
		t.Error("keyword matching should ignore case")
	}
}

func TestClientConfigBoundsRequests(t *testing.T) {
	cfg := config.AIConfig{
		APIKey:         "test-key",
		BaseURL:        "https://generativelanguage.googleapis.com/v1beta/openai/",
		RequestTimeout: 30 * time.Second,
	}

	clientCfg := newClientConfig(cfg)
	if clientCfg.BaseURL != cfg.BaseURL {
		t.Errorf("BaseURL = %q, want %q", clientCfg.BaseURL, cfg.BaseURL)
	}
	httpClient, ok := clientCfg.HTTPClient.(*http.Client)
	if !ok {
		t.Fatalf("HTTPClient is %T, want *http.Client", clientCfg.HTTPClient)
	}
	if httpClient.Timeout != cfg.RequestTimeout {
		t.Errorf("Timeout = %v, want %v", httpClient.Timeout, cfg.RequestTimeout)
	}
}

func TestReplyWithoutKeyServesCannedReply(t *testing.T) {
	svc := NewChatService(config.AIConfig{}, zap.NewNop())

	got, err := svc.Reply(context.Background(), "como poupar dinheiro?", nil)
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if !strings.Contains(got, "Automatize suas economias") {
		t.Errorf("expected saving canned reply, got %q", got)
	}
}

func TestReplyRejectsBlankMessage(t *testing.T) {
	svc := NewChatService(config.AIConfig{}, zap.NewNop())

	for _, msg := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Reply(context.Background(), msg, nil); err != ErrValidation {
			t.Errorf("Reply(%q) error = %v, want ErrValidation", msg, err)
		}
	}
}

func TestReplyIgnoresHistoryWhenOffline(t *testing.T) {
	svc := NewChatService(config.AIConfig{}, zap.NewNop())

	history := []dto.ChatMessage{
		{Role: "user", Content: "primeira pergunta"},
		{Role: "bot", Content: "primeira resposta"},
	}
	got, err := svc.Reply(context.Background(), "dívida", history)
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if !strings.Contains(got, "Snowball") {
		t.Errorf("expected debt canned reply, got %q", got)
	}
}
