package request

import "github.com/epositalia/scontrino-api/internal/domain/enum"

// LineItemRequest is one product line as the POS sends it. Zero-price lines
// and lines flagged as notes are informational and never reach the fiscal
// API.
type LineItemRequest struct {
	Descrizione string     `json:"descrizione"`
	Quantita    Count      `json:"quantita"`
	Prezzo      Amount     `json:"prezzo"`
	IVA         Code       `json:"iva"`
	Sconto      Amount     `json:"sconto"`
	Omaggio     StrictBool `json:"omaggio"`
	SKU         string     `json:"sku"`
	Nota        StrictBool `json:"nota"`
}

// PaymentBreakdownRequest itemizes how the total was collected.
type PaymentBreakdownRequest struct {
	Contanti         Amount `json:"contanti"`
	Elettronico      Amount `json:"elettronico"`
	TicketRestaurant Amount `json:"ticketRestaurant"`
	NumeroTicket     Count  `json:"numeroTicket"`
}

// SubmitReceiptRequest represents a receipt submission from the POS.
type SubmitReceiptRequest struct {
	PartitaIVA string            `json:"partitaIva"`
	Prodotti   []LineItemRequest `json:"prodotti"`
	Totale     Amount            `json:"totale"`

	Pagamenti       *PaymentBreakdownRequest `json:"pagamenti"`
	MetodoPagamento *enum.PaymentMode        `json:"metodoPagamento"`

	CodiceLotteria string `json:"codiceLotteria"`
	CodiceTicket   string `json:"codiceTicket"`

	// Optional customer header, relayed verbatim.
	Intestatario  string `json:"intestatario"`
	CodiceFiscale string `json:"codiceFiscale"`
	Indirizzo     string `json:"indirizzo"`
	Email         string `json:"email"`
	Telefono      string `json:"telefono"`
}

// VoidReceiptRequest voids a previously issued receipt.
type VoidReceiptRequest struct {
	IDScontrino string `json:"idScontrino"`
}
