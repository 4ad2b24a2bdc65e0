package dto

type AddInvestmentRequest struct {
	Symbol        string  `json:"symbol"`
	Quantity      int     `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
}

type UpdateInvestmentRequest struct {
	Quantity *int `json:"quantity"`
}

type InvestmentResponse struct {
	ID        int64   `json:"id"`
	Symbol    string  `json:"symbol"`
	Quantity  int     `json:"quantity"`
	AvgPrice  float64 `json:"avg_price"`
	LastPrice float64 `json:"last_price"`
	Market    string  `json:"market"`
	Currency  string  `json:"currency"`
}

type InvestmentsResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

type InvestmentCreatedResponse struct {
	Message    string             `json:"message"`
	Investment InvestmentResponse `json:"investment"`
}
