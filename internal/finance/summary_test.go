package finance

import (
	"fmt"
	"math"
	"testing"
	"time"

	"financas/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expense(id int64, amount float64, day time.Time, category string) models.Transaction {
	t := models.Transaction{ID: id, Type: models.TypeExpense, Amount: amount, Date: day}
	if category != "" {
		t.Category = &models.CategoryRef{Name: category}
	}
	return t
}

func income(id int64, amount float64, day time.Time) models.Transaction {
	return models.Transaction{ID: id, Type: models.TypeIncome, Amount: amount, Date: day}
}

func TestSummarize_Totals(t *testing.T) {
	txs := []models.Transaction{
		income(1, 3000, date(2025, 9, 1)),
		expense(2, 1200, date(2025, 9, 5), "Habitação"),
		expense(3, 300, date(2025, 9, 10), "Alimentação"),
		income(4, 150.50, date(2025, 9, 12)),
	}

	s := Summarize(txs)

	if s.TotalIncome != 3150.50 {
		t.Errorf("TotalIncome = %v, want 3150.50", s.TotalIncome)
	}
	if s.TotalExpense != 1500 {
		t.Errorf("TotalExpense = %v, want 1500", s.TotalExpense)
	}
	if s.Balance != s.TotalIncome-s.TotalExpense {
		t.Errorf("Balance = %v, want income-expense = %v", s.Balance, s.TotalIncome-s.TotalExpense)
	}
}

func TestSummarize_EmptySet(t *testing.T) {
	s := Summarize(nil)

	if s.TotalIncome != 0 || s.TotalExpense != 0 || s.Balance != 0 {
		t.Errorf("empty set should produce zero totals, got %+v", s)
	}
	if len(s.ByCategory) != 0 {
		t.Errorf("empty set should produce empty breakdown, got %v", s.ByCategory)
	}
	if len(s.Recent) != 0 {
		t.Errorf("empty set should produce empty recent list, got %v", s.Recent)
	}
}

func TestCategoryBreakdown_ExcludesUncategorized(t *testing.T) {
	txs := []models.Transaction{
		expense(1, 100, date(2025, 9, 1), "Alimentação"),
		expense(2, 50, date(2025, 9, 2), ""), // no category: out of the breakdown
		expense(3, 200, date(2025, 9, 3), "Habitação"),
	}

	s := Summarize(txs)

	if s.TotalExpense != 350 {
		t.Fatalf("TotalExpense = %v, want 350 (uncategorized still counts)", s.TotalExpense)
	}

	var categorized float64
	for _, c := range s.ByCategory {
		categorized += c.Valor
	}
	if categorized != 300 {
		t.Errorf("sum of breakdown = %v, want 300 (uncategorized excluded)", categorized)
	}
}

func TestCategoryBreakdown_PercentagesSumTo100(t *testing.T) {
	txs := []models.Transaction{
		expense(1, 120, date(2025, 9, 1), "Alimentação"),
		expense(2, 80, date(2025, 9, 2), "Transporte"),
		expense(3, 200, date(2025, 9, 3), "Habitação"),
	}

	s := Summarize(txs)

	var total float64
	for _, c := range s.ByCategory {
		total += c.Percentagem
	}
	if math.Abs(total-100.0) > 0.3 {
		t.Errorf("percentages sum to %v, want 100 within rounding", total)
	}
}

func TestCategoryBreakdown_SortedDescendingStable(t *testing.T) {
	txs := []models.Transaction{
		expense(1, 50, date(2025, 9, 1), "Lazer"),
		expense(2, 200, date(2025, 9, 2), "Habitação"),
		expense(3, 50, date(2025, 9, 3), "Transporte"),
	}

	s := Summarize(txs)

	want := []string{"Habitação", "Lazer", "Transporte"}
	if len(s.ByCategory) != len(want) {
		t.Fatalf("breakdown has %d entries, want %d", len(s.ByCategory), len(want))
	}
	for i, name := range want {
		if s.ByCategory[i].Categoria != name {
			t.Errorf("breakdown[%d] = %q, want %q (desc by valor, ties in first-seen order)", i, s.ByCategory[i].Categoria, name)
		}
	}
}

func TestCategoryBreakdown_ZeroExpenseDenominator(t *testing.T) {
	// totalExpense = 0 switches the denominator to 1; shares degrade to
	// valor*100 instead of dividing by zero.
	breakdown := CategoryBreakdown([]models.Transaction{
		expense(1, 0.5, date(2025, 9, 1), "Outros"),
	}, 0, "")

	if len(breakdown) != 1 {
		t.Fatalf("breakdown has %d entries, want 1", len(breakdown))
	}
	if breakdown[0].Percentagem != 50.0 {
		t.Errorf("Percentagem = %v, want 50.0 (valor*100)", breakdown[0].Percentagem)
	}
}

func TestCategoryBreakdown_FallbackLabel(t *testing.T) {
	txs := []models.Transaction{
		expense(1, 100, date(2025, 9, 1), ""),
		expense(2, 100, date(2025, 9, 2), "Saúde"),
	}

	breakdown := CategoryBreakdown(txs, 200, "Sem categoria")

	if len(breakdown) != 2 {
		t.Fatalf("breakdown has %d entries, want 2", len(breakdown))
	}
	found := false
	for _, c := range breakdown {
		if c.Categoria == "Sem categoria" && c.Valor == 100 {
			found = true
		}
	}
	if !found {
		t.Errorf("uncategorized bucket missing from %v", breakdown)
	}
}

func TestUpcomingPayments_FilterSortCap(t *testing.T) {
	today := date(2025, 9, 15)

	var txs []models.Transaction
	txs = append(txs, expense(99, 10, date(2025, 9, 14), "")) // yesterday: excluded
	for i := 0; i < 20; i++ {
		txs = append(txs, expense(int64(i+1), 25, today.AddDate(0, 0, 20-i), ""))
	}

	payments := UpcomingPayments(txs, today)

	if len(payments) != 10 {
		t.Fatalf("got %d payments, want cap of 10", len(payments))
	}
	for i, p := range payments {
		if p.Data.Before(today) {
			t.Errorf("payment %d dated %v is before today", p.ID, p.Data)
		}
		if i > 0 && payments[i-1].Data.After(p.Data) {
			t.Errorf("payments not ascending by date at index %d", i)
		}
		if p.Categoria != "Despesa" {
			t.Errorf("Categoria = %q, want the fixed label \"Despesa\"", p.Categoria)
		}
		if p.Valor < 0 {
			t.Errorf("Valor = %v, upcoming amounts stay positive", p.Valor)
		}
	}
}

func TestUpcomingPayments_IncludesToday(t *testing.T) {
	today := date(2025, 9, 15)
	payments := UpcomingPayments([]models.Transaction{
		expense(1, 30, today, ""),
	}, today)

	if len(payments) != 1 {
		t.Fatalf("a payment dated today must qualify, got %d", len(payments))
	}
	if payments[0].Descricao != NoDescription {
		t.Errorf("Descricao = %q, want %q for blank notes", payments[0].Descricao, NoDescription)
	}
}

func TestSummarize_RecentOrderingAndSigns(t *testing.T) {
	base := date(2025, 9, 10)
	created := func(h int) time.Time { return time.Date(2025, 9, 10, h, 0, 0, 0, time.UTC) }

	txs := []models.Transaction{
		{ID: 1, Type: models.TypeExpense, Amount: 10, Date: base, CreatedAt: created(8), Notes: "café"},
		{ID: 2, Type: models.TypeIncome, Amount: 50, Date: base, CreatedAt: created(12)},
		{ID: 3, Type: models.TypeExpense, Amount: 20, Date: base.AddDate(0, 0, 1), Notes: "livro"},
		{ID: 4, Type: models.TypeExpense, Amount: 5, Date: base}, // no created_at: last among same-day
	}

	s := Summarize(txs)

	wantOrder := []int64{3, 2, 1, 4}
	if len(s.Recent) != len(wantOrder) {
		t.Fatalf("got %d recent entries, want %d", len(s.Recent), len(wantOrder))
	}
	for i, id := range wantOrder {
		if s.Recent[i].ID != id {
			t.Errorf("recent[%d].ID = %d, want %d", i, s.Recent[i].ID, id)
		}
	}

	if s.Recent[1].Valor != 50 || s.Recent[1].Tipo != "receita" {
		t.Errorf("income entry = %+v, want positive valor and tipo receita", s.Recent[1])
	}
	if s.Recent[2].Valor != -10 || s.Recent[2].Tipo != "despesa" {
		t.Errorf("expense entry = %+v, want negative valor and tipo despesa", s.Recent[2])
	}
	if s.Recent[3].Descricao != NoDescription {
		t.Errorf("Descricao = %q, want %q for blank notes", s.Recent[3].Descricao, NoDescription)
	}
}

func TestSummarize_RecentCappedAtTen(t *testing.T) {
	var txs []models.Transaction
	for i := 0; i < 25; i++ {
		txs = append(txs, expense(int64(i+1), 1, date(2025, 9, 1).AddDate(0, 0, i), ""))
	}

	s := Summarize(txs)

	if len(s.Recent) != 10 {
		t.Fatalf("got %d recent entries, want 10", len(s.Recent))
	}
	// Newest first.
	if s.Recent[0].ID != 25 {
		t.Errorf("recent[0].ID = %d, want 25", s.Recent[0].ID)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{33.333333, 33.3},
		{66.666666, 66.7},
		{0, 0},
		{12.25, 12.3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.in), func(t *testing.T) {
			if got := Round1(tt.in); got != tt.want {
				t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
