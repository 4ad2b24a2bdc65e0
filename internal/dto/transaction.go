package dto

type AddTransactionRequest struct {
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Tipo      string  `json:"tipo"` // despesa | receita
	Data      string  `json:"data"` // YYYY-MM-DD
	Categoria string  `json:"categoria"`
	Notas     string  `json:"notas"`
	Moeda     string  `json:"moeda"`
}

// TransactionRow mirrors the stored expense row, with the joined category
// nested under "categories" the way range queries return it.
type TransactionRow struct {
	ID         int64        `json:"id"`
	UserID     int64        `json:"user_id"`
	Type       string       `json:"type"`
	Amount     float64      `json:"amount"`
	Currency   string       `json:"currency"`
	CategoryID *int64       `json:"category_id"`
	Date       string       `json:"date"`
	CreatedAt  string       `json:"created_at"`
	Notes      string       `json:"notes"`
	Categories *CategoryRef `json:"categories,omitempty"`
}

type CategoryRef struct {
	Name   string `json:"name"`
	Colour string `json:"colour"`
}

type TransactionsResponse struct {
	Transactions []TransactionRow `json:"transactions"`
}

type TransactionCreatedResponse struct {
	Transaction TransactionRow `json:"transaction"`
	Message     string         `json:"message"`
}
