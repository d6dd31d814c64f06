package request

// CreateCompanyRequest registers a company configuration upstream.
type CreateCompanyRequest struct {
	PartitaIVA     string `json:"partitaIva"`
	RagioneSociale string `json:"ragioneSociale"`
	CodiceFiscale  string `json:"codiceFiscale"`
	Indirizzo      string `json:"indirizzo"`
	Email          string `json:"email"`
	Telefono       string `json:"telefono"`

	// Fisconline credentials, relayed verbatim when the deployment uses them.
	UsernameFisconline string `json:"usernameFisconline"`
	PasswordFisconline string `json:"passwordFisconline"`
	PinFisconline      string `json:"pinFisconline"`
}

// EnableReceiptsRequest re-enables receipt issuance; the upstream demands
// the full credential triple for this.
type EnableReceiptsRequest struct {
	UsernameFisconline string `json:"usernameFisconline"`
	PasswordFisconline string `json:"passwordFisconline"`
	PinFisconline      string `json:"pinFisconline"`
}

// BlockAccountRequest adds a fiscal id to the deny-list.
type BlockAccountRequest struct {
	Motivo string `json:"motivo"`
}
