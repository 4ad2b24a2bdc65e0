package models

import "time"

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is a single income or expense record. Amount is always a
// non-negative magnitude; the sign is derived from Type at presentation time.
type Transaction struct {
	ID         int64           `db:"id"`
	UserID     int64           `db:"user_id"`
	Type       TransactionType `db:"type"`
	Amount     float64         `db:"amount"`
	Currency   string          `db:"currency"`
	CategoryID *int64          `db:"category_id"`
	Date       time.Time       `db:"date"`
	CreatedAt  time.Time       `db:"created_at"`
	Notes      string          `db:"notes"`

	// Category is populated by range queries that join the categories table.
	Category *CategoryRef
}

// CategoryRef is the joined category projection carried on a transaction.
type CategoryRef struct {
	Name   string
	Colour string
}
