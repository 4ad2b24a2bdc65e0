package models

type Investment struct {
	ID        int64   `db:"id"`
	UserID    int64   `db:"user_id"`
	Symbol    string  `db:"symbol"`
	Quantity  int     `db:"quantity"`
	AvgPrice  float64 `db:"avg_price"`
	LastPrice float64 `db:"last_price"`
	Market    string  `db:"market"`
	Currency  string  `db:"currency"`
}

// MarketValue values the position at the last known price, falling back to
// the average purchase price when no quote has been stored yet.
func (i Investment) MarketValue() float64 {
	price := i.LastPrice
	if price <= 0 {
		price = i.AvgPrice
	}
	if price <= 0 {
		return 0
	}
	return float64(i.Quantity) * price
}
