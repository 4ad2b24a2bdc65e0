package finance

import "testing"

func TestSavingsScore(t *testing.T) {
	tests := []struct {
		name string
		taxa float64
		want float64
	}{
		{"negative rate scores zero", -5, 0},
		{"zero rate", 0, 0},
		{"linear below 20", 10, 10},
		{"knee at 20", 20, 20},
		{"linear between 20 and 30", 25, 30},
		{"full marks at 30", 30, 40},
		{"capped above 30", 55, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := savingsScore(tt.taxa); got != tt.want {
				t.Errorf("savingsScore(%v) = %v, want %v", tt.taxa, got, tt.want)
			}
		})
	}
}

func TestEmergencyScore(t *testing.T) {
	tests := []struct {
		name  string
		meses float64
		want  float64
	}{
		{"no fund", 0, 0},
		{"linear below 6", 3, 10},
		{"knee at 6", 6, 20},
		{"linear between 6 and 12", 9, 25},
		{"full marks at 12", 12, 30},
		{"capped above 12", 24, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emergencyScore(tt.meses); got != tt.want {
				t.Errorf("emergencyScore(%v) = %v, want %v", tt.meses, got, tt.want)
			}
		})
	}
}

func TestDebtScore(t *testing.T) {
	tests := []struct {
		taxa float64
		want float64
	}{
		{5, 20},
		{15, 15},
		{25, 10},
		{35, 0},
		{10, 15},
		{30, 0},
	}
	for _, tt := range tests {
		if got := debtScore(tt.taxa); got != tt.want {
			t.Errorf("debtScore(%v) = %v, want %v", tt.taxa, got, tt.want)
		}
	}
}

func TestInvestmentScore(t *testing.T) {
	if got := investmentScore(500); got != 10 {
		t.Errorf("investmentScore(500) = %v, want 10", got)
	}
	if got := investmentScore(0); got != 0 {
		t.Errorf("investmentScore(0) = %v, want 0", got)
	}
}

func TestComputeHealth_EndToEnd(t *testing.T) {
	h := ComputeHealth(HealthInput{
		RendaMensal:     3000,
		DespesasMensais: 2000,
		FundoEmergencia: 12000,
		Investimentos:   500,
		Dividas:         0,
	})

	// savings 40 + emergency 20 + debt 20 + investments 10
	if h.Score != 90 {
		t.Errorf("Score = %d, want 90", h.Score)
	}
	if Round1(h.TaxaPoupanca) != 33.3 {
		t.Errorf("TaxaPoupanca = %v, want 33.3 after rounding", h.TaxaPoupanca)
	}
	if h.MesesFundoEmergencia != 6.0 {
		t.Errorf("MesesFundoEmergencia = %v, want 6.0", h.MesesFundoEmergencia)
	}
	if h.TaxaEndividamento != 0 {
		t.Errorf("TaxaEndividamento = %v, want 0", h.TaxaEndividamento)
	}
	if h.PoupancaMensal != 1000 {
		t.Errorf("PoupancaMensal = %v, want 1000", h.PoupancaMensal)
	}
}

func TestComputeHealth_ZeroIncomeAndExpenses(t *testing.T) {
	h := ComputeHealth(HealthInput{})

	if h.TaxaPoupanca != 0 || h.MesesFundoEmergencia != 0 || h.TaxaEndividamento != 0 {
		t.Errorf("zero input must produce zero rates, got %+v", h)
	}
	// debt component still awards its full 20 points at a 0% ratio
	if h.Score != 20 {
		t.Errorf("Score = %d, want 20", h.Score)
	}
}

func TestComputeHealth_PerfectScore(t *testing.T) {
	h := ComputeHealth(HealthInput{
		RendaMensal:     5000,
		DespesasMensais: 1000, // 80% savings rate
		FundoEmergencia: 12000, // 12 months
		Investimentos:   1,
	})

	if h.Score != 100 {
		t.Errorf("Score = %d, want 100", h.Score)
	}
}
