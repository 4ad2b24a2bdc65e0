package dto

type Settings struct {
	Telefone           *string      `json:"telefone"`
	DataNascimento     *string      `json:"dataNascimento"`
	Endereco           *string      `json:"endereco"`
	Cidade             *string      `json:"cidade"`
	CodigoPostal       *string      `json:"codigoPostal"`
	Pais               string       `json:"pais"`
	Moeda              string       `json:"moeda"`
	Idioma             string       `json:"idioma"`
	Tema               string       `json:"tema"`
	Notificacoes       Notificacoes `json:"notificacoes"`
	NivelPrivacidade   string       `json:"nivelPrivacidade"`
	RendaMensal        *float64     `json:"rendaMensal"`
	MetaPoupancaMensal *float64     `json:"metaPoupancaMensal"`
	FundoEmergencia    *float64     `json:"fundoEmergencia"`
}

// Notificacoes uses pointers so an update payload that omits a flag (or the
// whole object) can be told apart from an explicit false.
type Notificacoes struct {
	Email *bool `json:"email"`
	SMS   *bool `json:"sms"`
	Push  *bool `json:"push"`
}

type SettingsResponse struct {
	Settings Settings `json:"settings"`
}

type SettingsUpdatedResponse struct {
	Message  string   `json:"message"`
	Settings Settings `json:"settings"`
}
