package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"financas/internal/dto"
	"financas/pkg/config"

	"go.uber.org/zap"
)

const searchResultCap = 10

// Autocomplete queries get a tighter deadline than quote lookups so a slow
// provider cannot stall typing in the search box.
const searchTimeout = 5 * time.Second

type fallbackQuote struct {
	Price         float64
	Name          string
	Change        float64
	ChangePercent float64
}

// Demo prices served when the market data provider is unreachable or unset.
var fallbackQuotes = map[string]fallbackQuote{
	"AAPL":  {236.50, "Apple Inc.", 2.50, 1.07},
	"MSFT":  {420.75, "Microsoft Corporation", 5.25, 1.26},
	"GOOGL": {192.30, "Alphabet Inc.", -1.20, -0.62},
	"AMZN":  {210.45, "Amazon.com Inc.", 3.15, 1.52},
	"TSLA":  {285.20, "Tesla Inc.", -4.80, -1.66},
	"META":  {605.75, "Meta Platforms Inc.", 8.50, 1.42},
	"NFLX":  {298.60, "Netflix Inc.", 2.40, 0.81},
	"NVDA":  {975.50, "NVIDIA Corporation", 15.30, 1.59},
	"JPM":   {221.80, "JPMorgan Chase & Co.", 1.20, 0.54},
	"V":     {305.40, "Visa Inc.", 3.60, 1.19},
	"WMT":   {89.75, "Walmart Inc.", 1.15, 1.29},
	"DIS":   {92.30, "The Walt Disney Company", -0.70, -0.75},
	"INTC":  {42.80, "Intel Corporation", 0.50, 1.18},
	"AMD":   {189.50, "Advanced Micro Devices Inc.", 4.20, 2.27},
	"PYPL":  {82.45, "PayPal Holdings Inc.", 1.30, 1.60},
	"UBER":  {75.20, "Uber Technologies Inc.", -0.80, -1.05},
	"SPOT":  {252.10, "Spotify Technology S.A.", 5.40, 2.19},
	"COIN":  {195.60, "Coinbase Global Inc.", 8.30, 4.43},
	"ORCL":  {163.90, "Oracle Corporation", 2.10, 1.30},
	"CSCO":  {56.75, "Cisco Systems Inc.", 0.45, 0.80},
}

var popularStocks = []dto.StockSearchResult{
	{Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Exchange: "NASDAQ"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Exchange: "NASDAQ"},
	{Symbol: "AMZN", Name: "Amazon.com Inc.", Exchange: "NASDAQ"},
	{Symbol: "TSLA", Name: "Tesla Inc.", Exchange: "NASDAQ"},
	{Symbol: "META", Name: "Meta Platforms Inc.", Exchange: "NASDAQ"},
	{Symbol: "NFLX", Name: "Netflix Inc.", Exchange: "NASDAQ"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Exchange: "NASDAQ"},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Exchange: "NYSE"},
	{Symbol: "V", Name: "Visa Inc.", Exchange: "NYSE"},
	{Symbol: "WMT", Name: "Walmart Inc.", Exchange: "NYSE"},
	{Symbol: "DIS", Name: "The Walt Disney Company", Exchange: "NYSE"},
	{Symbol: "INTC", Name: "Intel Corporation", Exchange: "NASDAQ"},
	{Symbol: "AMD", Name: "Advanced Micro Devices Inc.", Exchange: "NASDAQ"},
	{Symbol: "PYPL", Name: "PayPal Holdings Inc.", Exchange: "NASDAQ"},
	{Symbol: "UBER", Name: "Uber Technologies Inc.", Exchange: "NYSE"},
	{Symbol: "SPOT", Name: "Spotify Technology S.A.", Exchange: "NYSE"},
	{Symbol: "COIN", Name: "Coinbase Global Inc.", Exchange: "NASDAQ"},
	{Symbol: "ORCL", Name: "Oracle Corporation", Exchange: "NYSE"},
	{Symbol: "CSCO", Name: "Cisco Systems Inc.", Exchange: "NASDAQ"},
}

type StockService struct {
	cfg    config.StocksConfig
	client *http.Client
	logger *zap.Logger
}

func NewStockService(cfg config.StocksConfig, logger *zap.Logger) *StockService {
	return &StockService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.RequestTimeout},
		logger: logger,
	}
}

type massiveQuote struct {
	Last          float64  `json:"last"`
	Currency      string   `json:"currency"`
	Timestamp     *int64   `json:"timestamp"`
	Change        float64  `json:"change"`
	ChangePercent float64  `json:"changePercent"`
	High          *float64 `json:"high"`
	Low           *float64 `json:"low"`
	Open          *float64 `json:"open"`
	Volume        *int64   `json:"volume"`
	Description   string   `json:"description"`
}

// Quote returns a live quote when the provider answers, otherwise the demo
// table. Unknown symbols map to ErrNotFound.
func (s *StockService) Quote(ctx context.Context, symbol string) (*dto.StockQuote, error) {
	symbol = strings.ToUpper(symbol)

	if s.cfg.APIKey != "" {
		quote, err := s.fetchQuote(ctx, symbol)
		if err == nil {
			return quote, nil
		}
		s.logger.Warn("Stock provider lookup failed, using fallback",
			zap.String("symbol", symbol),
			zap.Error(err),
		)
	}

	fb, ok := fallbackQuotes[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: stock symbol %s", ErrNotFound, symbol)
	}
	return &dto.StockQuote{
		Symbol:        symbol,
		Price:         fb.Price,
		Currency:      "USD",
		Change:        fb.Change,
		ChangePercent: fb.ChangePercent,
		Name:          fb.Name,
		Source:        "fallback",
	}, nil
}

// Search matches the query against the popular-stock autocomplete list and
// falls back to the provider's search endpoint when nothing matches locally.
func (s *StockService) Search(ctx context.Context, query string) ([]dto.StockSearchResult, error) {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return nil, ErrValidation
	}

	var results []dto.StockSearchResult
	for _, stock := range popularStocks {
		if strings.Contains(stock.Symbol, query) || strings.Contains(strings.ToUpper(stock.Name), query) {
			results = append(results, stock)
		}
	}

	if len(results) == 0 && s.cfg.APIKey != "" {
		remote, err := s.searchRemote(ctx, query)
		if err != nil {
			s.logger.Warn("Stock provider search failed", zap.String("query", query), zap.Error(err))
		} else {
			results = remote
		}
	}

	if len(results) > searchResultCap {
		results = results[:searchResultCap]
	}
	if results == nil {
		results = []dto.StockSearchResult{}
	}
	return results, nil
}

// DetailedQuote proxies the provider's quote payload untouched.
func (s *StockService) DetailedQuote(ctx context.Context, symbol string) (json.RawMessage, error) {
	if s.cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	symbol = strings.ToUpper(symbol)

	resp, err := s.doGet(ctx, "/quote/"+url.PathEscape(symbol))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: stock symbol %s", ErrNotFound, symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stock provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading quote response: %w", err)
	}
	return json.RawMessage(body), nil
}

func (s *StockService) fetchQuote(ctx context.Context, symbol string) (*dto.StockQuote, error) {
	resp, err := s.doGet(ctx, "/quote/"+url.PathEscape(symbol))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stock provider returned status %d", resp.StatusCode)
	}

	var data massiveQuote
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding quote response: %w", err)
	}

	currency := data.Currency
	if currency == "" {
		currency = "USD"
	}
	name := data.Description
	if name == "" {
		name = symbol
	}
	return &dto.StockQuote{
		Symbol:        symbol,
		Price:         data.Last,
		Currency:      currency,
		Timestamp:     data.Timestamp,
		Change:        data.Change,
		ChangePercent: data.ChangePercent,
		High:          data.High,
		Low:           data.Low,
		Open:          data.Open,
		Volume:        data.Volume,
		Name:          name,
	}, nil
}

func (s *StockService) searchRemote(ctx context.Context, query string) ([]dto.StockSearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	resp, err := s.doGet(ctx, "/search?query="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stock provider returned status %d", resp.StatusCode)
	}

	var data struct {
		Results []dto.StockSearchResult `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return data.Results, nil
}

func (s *StockService) doGet(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	return s.client.Do(req)
}
