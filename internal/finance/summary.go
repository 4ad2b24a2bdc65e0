// Package finance holds the pure computations behind the activity summary and
// the financial health score. Functions here never touch the database and
// never fail on well-formed input: an empty transaction set yields zero totals
// and empty lists.
package finance

import (
	"math"
	"sort"
	"time"

	"financas/internal/models"
)

// NoDescription is used when a transaction carries no notes.
const NoDescription = "Sem descrição"

// UpcomingCategory is the fixed label exposed on upcoming payments. The API
// has always returned this literal instead of the transaction's real
// category, and consumers depend on it.
const UpcomingCategory = "Despesa"

const listCap = 10

type Summary struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
	ByCategory   []CategoryTotal
	Recent       []RecentEntry
}

type CategoryTotal struct {
	Categoria   string
	Valor       float64
	Percentagem float64
}

type RecentEntry struct {
	ID        int64
	Descricao string
	Valor     float64 // signed: income positive, expense negative
	Tipo      string  // receita | despesa
	Data      time.Time
}

type Payment struct {
	ID        int64
	Descricao string
	Valor     float64
	Data      time.Time
	Categoria string
}

// Summarize aggregates one user's transactions for a date range: totals,
// the expense breakdown by category and the ten most recent movements.
// Uncategorized expenses count toward the totals but are excluded from the
// per-category breakdown.
func Summarize(txs []models.Transaction) Summary {
	var s Summary
	for _, t := range txs {
		switch t.Type {
		case models.TypeIncome:
			s.TotalIncome += t.Amount
		case models.TypeExpense:
			s.TotalExpense += t.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	s.ByCategory = CategoryBreakdown(txs, s.TotalExpense, "")
	s.Recent = recentEntries(txs)
	return s
}

// CategoryBreakdown groups expense transactions by category name and computes
// each group's share of totalExpense, rounded to one decimal place. Groups are
// ordered by descending value; ties keep first-seen order. When fallback is
// empty, expenses without a resolved category are skipped; otherwise they are
// bucketed under the fallback label.
func CategoryBreakdown(txs []models.Transaction, totalExpense float64, fallback string) []CategoryTotal {
	sums := make(map[string]float64)
	var order []string

	for _, t := range txs {
		if t.Type != models.TypeExpense {
			continue
		}
		name := fallback
		if t.Category != nil && t.Category.Name != "" {
			name = t.Category.Name
		}
		if name == "" {
			continue
		}
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += t.Amount
	}

	// Guard against division by zero; with no expenses the shares degrade to
	// valor*100 rather than failing.
	denom := totalExpense
	if denom <= 0 {
		denom = 1
	}

	breakdown := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		valor := sums[name]
		breakdown = append(breakdown, CategoryTotal{
			Categoria:   name,
			Valor:       valor,
			Percentagem: Round1(valor / denom * 100),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Valor > breakdown[j].Valor
	})
	return breakdown
}

// UpcomingPayments returns expense transactions dated today or later, nearest
// first, capped at ten. Amounts stay positive magnitudes.
func UpcomingPayments(txs []models.Transaction, today time.Time) []Payment {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	var future []models.Transaction
	for _, t := range txs {
		if t.Type == models.TypeExpense && !t.Date.Before(day) {
			future = append(future, t)
		}
	}

	sort.SliceStable(future, func(i, j int) bool {
		return future[i].Date.Before(future[j].Date)
	})
	if len(future) > listCap {
		future = future[:listCap]
	}

	payments := make([]Payment, 0, len(future))
	for _, t := range future {
		payments = append(payments, Payment{
			ID:        t.ID,
			Descricao: description(t),
			Valor:     t.Amount,
			Data:      t.Date,
			Categoria: UpcomingCategory,
		})
	}
	return payments
}

func recentEntries(txs []models.Transaction) []RecentEntry {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)

	// Newest date first; created_at breaks ties, a missing created_at (zero
	// time) sorting last.
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > listCap {
		sorted = sorted[:listCap]
	}

	entries := make([]RecentEntry, 0, len(sorted))
	for _, t := range sorted {
		valor := t.Amount
		tipo := "receita"
		if t.Type == models.TypeExpense {
			valor = -valor
			tipo = "despesa"
		}
		entries = append(entries, RecentEntry{
			ID:        t.ID,
			Descricao: description(t),
			Valor:     valor,
			Tipo:      tipo,
			Data:      t.Date,
		})
	}
	return entries
}

func description(t models.Transaction) string {
	if t.Notes == "" {
		return NoDescription
	}
	return t.Notes
}

// Round1 rounds to one decimal place. Applied only at presentation
// boundaries, never inside intermediate computations.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
