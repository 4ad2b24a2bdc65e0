package models

// UserSettings holds one row of profile and preference data per user. The
// three declared financial figures (monthly income, savings target, emergency
// fund) are user-stated context only; computed metrics never read them.
type UserSettings struct {
	UserID             int64    `db:"user_id"`
	Telefone           *string  `db:"telefone"`
	DataNascimento     *string  `db:"data_nascimento"`
	Endereco           *string  `db:"endereco"`
	Cidade             *string  `db:"cidade"`
	CodigoPostal       *string  `db:"codigo_postal"`
	Pais               string   `db:"pais"`
	Moeda              string   `db:"moeda"`
	Idioma             string   `db:"idioma"`
	Tema               string   `db:"tema"`
	NotificacoesEmail  bool     `db:"notificacoes_email"`
	NotificacoesSMS    bool     `db:"notificacoes_sms"`
	NotificacoesPush   bool     `db:"notificacoes_push"`
	NivelPrivacidade   string   `db:"nivel_privacidade"`
	RendaMensal        *float64 `db:"renda_mensal"`
	MetaPoupancaMensal *float64 `db:"meta_poupanca_mensal"`
	FundoEmergencia    *float64 `db:"fundo_emergencia"`
}

// DefaultSettings are returned when a user has no settings row yet.
func DefaultSettings(userID int64) UserSettings {
	return UserSettings{
		UserID:            userID,
		Pais:              "Portugal",
		Moeda:             "EUR",
		Idioma:            "pt-PT",
		Tema:              "claro",
		NotificacoesEmail: true,
		NotificacoesSMS:   false,
		NotificacoesPush:  true,
		NivelPrivacidade:  "normal",
	}
}
