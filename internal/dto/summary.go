package dto

// SummaryResponse is the /api/activity-summary payload. Key names are part of
// the public contract and must not be renamed.
type SummaryResponse struct {
	SaldoAtual           float64             `json:"saldoAtual"`
	DespesasMes          float64             `json:"despesasMes"`
	ReceitasMes          float64             `json:"receitasMes"`
	ProximosPagamentos   []UpcomingPayment   `json:"proximosPagamentos"`
	DespesasPorCategoria []CategoryBreakdown `json:"despesasPorCategoria"`
	UltimasTransacoes    []RecentTransaction `json:"ultimasTransacoes"`
}

type UpcomingPayment struct {
	ID        int64   `json:"id"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Data      string  `json:"data"`
	Categoria string  `json:"categoria"`
}

type CategoryBreakdown struct {
	Categoria   string  `json:"categoria"`
	Valor       float64 `json:"valor"`
	Percentagem float64 `json:"percentagem"`
}

type RecentTransaction struct {
	ID        int64   `json:"id"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
	Tipo      string  `json:"tipo"`
	Data      string  `json:"data"`
}

// PublicSummaryResponse is the read-only /ws summary shape.
type PublicSummaryResponse struct {
	UserID               int64               `json:"user_id"`
	Periodo              Periodo             `json:"periodo"`
	Totais               Totais              `json:"totais"`
	DespesasPorCategoria []CategoryBreakdown `json:"despesasPorCategoria"`
}

type Periodo struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

type Totais struct {
	Receitas float64 `json:"receitas"`
	Despesas float64 `json:"despesas"`
	Saldo    float64 `json:"saldo"`
}

type PublicTransaction struct {
	ID           int64   `json:"id"`
	Data         string  `json:"data"`
	Valor        float64 `json:"valor"`
	Tipo         string  `json:"tipo"`
	Moeda        string  `json:"moeda"`
	Categoria    *string `json:"categoria"`
	CorCategoria *string `json:"corCategoria"`
	Descricao    string  `json:"descricao"`
}

type PublicTransactionsResponse struct {
	UserID       int64               `json:"user_id"`
	Total        int                 `json:"total"`
	Transactions []PublicTransaction `json:"transactions"`
}

type PublicGoal struct {
	ID            int64   `json:"id"`
	Nome          string  `json:"nome"`
	ValorObjetivo float64 `json:"valorObjetivo"`
	ValorAtual    float64 `json:"valorAtual"`
	Prazo         string  `json:"prazo"`
}

type PublicGoalsResponse struct {
	UserID int64        `json:"user_id"`
	Total  int          `json:"total"`
	Goals  []PublicGoal `json:"goals"`
}
