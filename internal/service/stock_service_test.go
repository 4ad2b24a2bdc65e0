package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"financas/pkg/config"

	"go.uber.org/zap"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newOfflineStockService() *StockService {
	// No API key set, so lookups never leave the process.
	return NewStockService(config.StocksConfig{BaseURL: "https://api.massive.com"}, zap.NewNop())
}

func TestQuoteFallbackTable(t *testing.T) {
	svc := newOfflineStockService()

	quote, err := svc.Quote(context.Background(), "aapl")
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}
	if quote.Symbol != "AAPL" {
		t.Errorf("Symbol = %q, want AAPL", quote.Symbol)
	}
	if quote.Price != 236.50 {
		t.Errorf("Price = %v, want 236.50", quote.Price)
	}
	if quote.Name != "Apple Inc." {
		t.Errorf("Name = %q, want Apple Inc.", quote.Name)
	}
	if quote.Currency != "USD" {
		t.Errorf("Currency = %q, want USD", quote.Currency)
	}
	if quote.Source != "fallback" {
		t.Errorf("Source = %q, want fallback", quote.Source)
	}
}

func TestQuoteUnknownSymbol(t *testing.T) {
	svc := newOfflineStockService()

	_, err := svc.Quote(context.Background(), "ZZZZ")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Quote error = %v, want ErrNotFound", err)
	}
}

func TestSearchMatchesSymbolAndName(t *testing.T) {
	svc := newOfflineStockService()

	tests := []struct {
		name    string
		query   string
		wantSym string
	}{
		{"exact symbol", "TSLA", "TSLA"},
		{"lowercase symbol", "tsla", "TSLA"},
		{"partial symbol", "NVD", "NVDA"},
		{"company name", "walmart", "WMT"},
		{"partial name", "spotify", "SPOT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.Search(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("Search returned error: %v", err)
			}
			found := false
			for _, r := range results {
				if r.Symbol == tt.wantSym {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Search(%q) did not include %s, got %v", tt.query, tt.wantSym, results)
			}
		})
	}
}

func TestSearchCapsResults(t *testing.T) {
	svc := newOfflineStockService()

	// "A" appears in many symbols and names.
	results, err := svc.Search(context.Background(), "a")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) > searchResultCap {
		t.Errorf("got %d results, want at most %d", len(results), searchResultCap)
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := newOfflineStockService()

	for _, q := range []string{"", "   "} {
		if _, err := svc.Search(context.Background(), q); !errors.Is(err, ErrValidation) {
			t.Errorf("Search(%q) error = %v, want ErrValidation", q, err)
		}
	}
}

func TestSearchNoMatchReturnsEmptySlice(t *testing.T) {
	svc := newOfflineStockService()

	results, err := svc.Search(context.Background(), "QQQQQQ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if results == nil {
		t.Error("results should be an empty slice, not nil")
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestDetailedQuoteRequiresKey(t *testing.T) {
	svc := newOfflineStockService()

	if _, err := svc.DetailedQuote(context.Background(), "AAPL"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("DetailedQuote error = %v, want ErrNotConfigured", err)
	}
}

func TestSearchRemoteBoundsRequestDeadline(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool
	client := &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			deadline, hasDeadline = req.Context().Deadline()
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"results":[]}`)),
				Header:     make(http.Header),
			}, nil
		}),
	}
	svc := &StockService{
		cfg:    config.StocksConfig{BaseURL: "https://api.massive.com", APIKey: "test-key"},
		client: client,
		logger: zap.NewNop(),
	}

	start := time.Now()
	// No popular stock matches, so the provider search fires.
	if _, err := svc.Search(context.Background(), "QQQQQQ"); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !hasDeadline {
		t.Fatal("provider search request carried no deadline")
	}
	if remaining := deadline.Sub(start); remaining > searchTimeout {
		t.Errorf("deadline %v from now, want at most %v", remaining, searchTimeout)
	}
}

func TestFallbackTableAgreesWithPopularList(t *testing.T) {
	if len(fallbackQuotes) != len(popularStocks) {
		t.Fatalf("fallback table has %d entries, popular list has %d", len(fallbackQuotes), len(popularStocks))
	}
	for _, stock := range popularStocks {
		fb, ok := fallbackQuotes[stock.Symbol]
		if !ok {
			t.Errorf("popular stock %s missing from fallback table", stock.Symbol)
			continue
		}
		if fb.Name != stock.Name {
			t.Errorf("%s: fallback name %q != popular name %q", stock.Symbol, fb.Name, stock.Name)
		}
	}
}
