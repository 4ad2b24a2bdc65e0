package finance

import "math"

// HealthInput carries the monthly aggregates the score is computed from.
// Dividas is always zero today; debt tracking does not exist yet but the
// scoring curve for it is already in place.
type HealthInput struct {
	RendaMensal     float64
	DespesasMensais float64
	FundoEmergencia float64
	Investimentos   float64
	Dividas         float64
}

// Health is the composite 0-100 score plus the derived rates, unrounded.
// Rounding to one decimal happens only when shaping the response.
type Health struct {
	Score                int
	PoupancaMensal       float64
	TaxaPoupanca         float64
	MesesFundoEmergencia float64
	TaxaEndividamento    float64
}

// ComputeHealth scores financial health from four weighted components:
// savings rate (0-40), emergency fund runway (0-30), debt ratio (0-20) and
// investment presence (0-10). Zero-income and zero-expense inputs are defined
// cases, not errors.
func ComputeHealth(in HealthInput) Health {
	h := Health{
		PoupancaMensal: in.RendaMensal - in.DespesasMensais,
	}
	if in.RendaMensal > 0 {
		h.TaxaPoupanca = h.PoupancaMensal / in.RendaMensal * 100
		h.TaxaEndividamento = in.Dividas / in.RendaMensal * 100
	}
	if in.DespesasMensais > 0 {
		h.MesesFundoEmergencia = in.FundoEmergencia / in.DespesasMensais
	}

	total := savingsScore(h.TaxaPoupanca) +
		emergencyScore(h.MesesFundoEmergencia) +
		debtScore(h.TaxaEndividamento) +
		investmentScore(in.Investimentos)

	score := int(math.Round(total))
	// The four components cannot exceed 100 together; the clamp stays as a
	// safety net for future curve changes.
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	h.Score = score
	return h
}

// savingsScore is piecewise linear over the savings rate: 20% of income saved
// is worth 20 points, 30% or more the full 40.
func savingsScore(taxa float64) float64 {
	switch {
	case taxa < 0:
		return 0
	case taxa >= 30:
		return 40
	case taxa >= 20:
		return 20 + ((taxa-20)/10)*20
	default:
		return (taxa / 20) * 20
	}
}

// emergencyScore is piecewise linear over months of expenses covered: 6
// months is worth 20 points, 12 or more the full 30.
func emergencyScore(meses float64) float64 {
	switch {
	case meses >= 12:
		return 30
	case meses >= 6:
		return 20 + ((meses-6)/6)*10
	default:
		return (meses / 6) * 20
	}
}

// debtScore is a step function over the debt-to-income percentage.
func debtScore(taxa float64) float64 {
	switch {
	case taxa < 10:
		return 20
	case taxa < 20:
		return 15
	case taxa < 30:
		return 10
	default:
		return 0
	}
}

func investmentScore(investimentos float64) float64 {
	if investimentos > 0 {
		return 10
	}
	return 0
}
