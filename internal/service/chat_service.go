package service

import (
	"context"
	"net/http"
	"strings"

	"financas/internal/dto"
	"financas/pkg/config"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const historyCap = 10

const financeSystemPrompt = `Você é um assistente financeiro experiente e amigável.
Sua função é ajudar os usuários com:
- Dicas de budgeting e gestão financeira
- Conselhos sobre poupança e investimentos
- Análise de despesas
- Estratégias de redução de custos
- Educação financeira básica

Sempre forneça conselhos práticos, baseados em boas práticas financeiras.
Mantenha um tom amigável, profissional e informativo.
Se a pergunta não for relacionada com finanças, redirecione gentilmente para tópicos financeiros.`

type ChatService struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewChatService(cfg config.AIConfig, logger *zap.Logger) *ChatService {
	var client *openai.Client
	if cfg.APIKey != "" {
		client = openai.NewClientWithConfig(newClientConfig(cfg))
	}
	return &ChatService{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}
}

// newClientConfig bounds every completion request with the configured
// timeout; the library's default HTTP client would wait forever.
func newClientConfig(cfg config.AIConfig) openai.ClientConfig {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout}
	return clientCfg
}

// Reply asks the model for an answer to the user's message. Missing key,
// request failure and blank completions all degrade to the canned replies
// so the chat never errors out on the user.
func (s *ChatService) Reply(ctx context.Context, message string, history []dto.ChatMessage) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrValidation
	}

	if s.client == nil {
		s.logger.Warn("AI key not configured, serving canned reply")
		return cannedReply(message), nil
	}

	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: financeSystemPrompt,
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Role == "bot" || msg.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.6,
		TopP:        0.95,
		MaxTokens:   400,
	})
	if err != nil {
		s.logger.Error("Chat completion failed, serving canned reply", zap.Error(err))
		return cannedReply(message), nil
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		s.logger.Warn("Chat completion came back empty, serving canned reply")
		return cannedReply(message), nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// cannedReply picks a prepared answer by keyword when the model is offline.
func cannedReply(message string) string {
	lower := strings.ToLower(message)

	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("orçamento", "budget", "gastar"):
		return `Para criar um orçamento eficaz:
1. Liste todas as suas despesas mensais
2. Divida em categorias (habitação, alimentação, transporte, etc.)
3. Defina limites para cada categoria
4. Revise mensalmente e ajuste conforme necessário

Uma boa prática é usar a regra 50/30/20:
- 50% para necessidades
- 30% para desejos
- 20% para poupança e dívidas`
	case containsAny("poupar", "economizar", "save"):
		return `Dicas para poupar dinheiro:
1. Automatize suas economias (transfira para conta de poupança automaticamente)
2. Defina metas de poupança claras
3. Encontre áreas para reduzir gastos
4. Use apps para rastrear despesas
5. Cancele assinaturas que não usa

Comece com pequenas quantidades e aumente gradualmente!`
	case containsAny("investimento", "investir", "stocks", "ações"):
		return `Para começar a investir:
1. Tenha uma emergência de 3-6 meses de despesas
2. Entenda seus objetivos e horizonte de tempo
3. Considere sua tolerância ao risco
4. Diversifique sua carteira
5. Comece com educação antes de investir

Tipos de investimentos: ações, ETFs, fundos mútuos, renda fixa, criptomoedas.`
	case containsAny("dívida", "empréstimo", "debt", "crédito"):
		return `Estratégia para gerenciar dívidas:
1. Liste todas as dívidas com taxa de juros
2. Priorize pagamento das mais altas taxas
3. Negocie taxas menores se possível
4. Faça pagamentos extras quando puder
5. Evite acumular novas dívidas

Métodos: Snowball (menores primeiro) ou Avalanche (maiores juros primeiro).`
	default:
		return `Posso ajudá-lo com:
- Dicas de orçamento e gestão de dinheiro
- Estratégias de poupança
- Planejamento de investimentos
- Gestão de dívidas
- Educação financeira básica

O que você gostaria de saber sobre finanças?`
	}
}
