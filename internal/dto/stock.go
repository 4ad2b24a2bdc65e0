package dto

type StockQuote struct {
	Symbol        string   `json:"symbol"`
	Price         float64  `json:"price"`
	Currency      string   `json:"currency"`
	Timestamp     *int64   `json:"timestamp,omitempty"`
	Change        float64  `json:"change"`
	ChangePercent float64  `json:"changePercent"`
	High          *float64 `json:"high,omitempty"`
	Low           *float64 `json:"low,omitempty"`
	Open          *float64 `json:"open,omitempty"`
	Volume        *int64   `json:"volume,omitempty"`
	Name          string   `json:"name"`
	Source        string   `json:"source,omitempty"`
}

type StockSearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

type StockSearchResponse struct {
	Results []StockSearchResult `json:"results"`
}
