package dto

type HealthResponse struct {
	HealthScore          int           `json:"healthScore"`
	Metrics              HealthMetrics `json:"metrics"`
	TaxaPoupanca         float64       `json:"taxaPoupanca"`
	MesesFundoEmergencia float64       `json:"mesesFundoEmergencia"`
	TaxaEndividamento    float64       `json:"taxaEndividamento"`
}

type HealthMetrics struct {
	RendaMensal     float64 `json:"rendaMensal"`
	DespesasMensais float64 `json:"despesasMensais"`
	PoupancaMensal  float64 `json:"poupancaMensal"`
	FundoEmergencia float64 `json:"fundoEmergencia"`
	Dividas         float64 `json:"dividas"`
	Investimentos   float64 `json:"investimentos"`
}
