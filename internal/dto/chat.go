package dto

type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversationHistory"`
}

type ChatMessage struct {
	Role    string `json:"role"` // user | bot | assistant
	Content string `json:"content"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}
