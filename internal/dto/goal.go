package dto

type GoalRequest struct {
	Nome          string   `json:"nome"`
	ValorObjetivo *float64 `json:"valorObjetivo"`
	ValorAtual    *float64 `json:"valorAtual"`
	Prazo         string   `json:"prazo"` // YYYY-MM-DD
}

type GoalResponse struct {
	ID            int64   `json:"id"`
	Nome          string  `json:"nome"`
	ValorAtual    float64 `json:"valorAtual"`
	ValorObjetivo float64 `json:"valorObjetivo"`
	Prazo         string  `json:"prazo"`
	Categoria     string  `json:"categoria"`
}

type GoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

type GoalCreatedResponse struct {
	Goal    GoalResponse `json:"goal"`
	Message string       `json:"message"`
}
