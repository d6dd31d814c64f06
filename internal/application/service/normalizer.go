package service

import (
	"time"

	"github.com/epositalia/scontrino-api/internal/domain/enum"
	"github.com/epositalia/scontrino-api/internal/domain/gateway"
	"github.com/epositalia/scontrino-api/internal/presentation/http/dto/request"
	"github.com/epositalia/scontrino-api/pkg/apperror"
	"github.com/epositalia/scontrino-api/pkg/money"
	"github.com/shopspring/decimal"
)

// Payment reconciliation policies.
const (
	PolicyItemized    = "itemized"
	PolicyModeDerived = "mode"
)

const defaultVatRateCode = "22"

// ReceiptNormalizer reshapes inbound receipt requests into the upstream
// schema: it drops non-fiscal line items, applies per-field defaults and
// reconciles the payment breakdown against the declared total.
type ReceiptNormalizer struct {
	policy string
}

// NewReceiptNormalizer creates a normalizer with the given default policy.
// Unknown policy names fall back to itemized reconciliation.
func NewReceiptNormalizer(policy string) *ReceiptNormalizer {
	if policy != PolicyModeDerived {
		policy = PolicyItemized
	}
	return &ReceiptNormalizer{policy: policy}
}

// NormalizeOutcome is the result of normalization. Terminal marks requests
// whose items were all filtered out: a first-class success that must not
// reach the upstream.
type NormalizeOutcome struct {
	Payload  *gateway.ReceiptPayload
	Terminal bool
}

// Validate checks the hard preconditions of a receipt submission.
func (n *ReceiptNormalizer) Validate(req *request.SubmitReceiptRequest) error {
	if req.PartitaIVA == "" {
		return apperror.NewValidationError("Partita IVA mancante")
	}
	if len(req.Prodotti) == 0 {
		return apperror.NewValidationError("Dati dello scontrino mancanti o incompleti")
	}
	return nil
}

// Normalize builds the upstream payload from a validated request.
func (n *ReceiptNormalizer) Normalize(req *request.SubmitReceiptRequest) (*NormalizeOutcome, error) {
	items := mapItems(filterItems(req.Prodotti))
	if len(items) == 0 {
		return &NormalizeOutcome{Terminal: true}, nil
	}

	total := money.Round2(req.Totale.Decimal())

	var payments paymentTotals
	switch {
	case req.MetodoPagamento != nil:
		payments = deriveFromMode(*req.MetodoPagamento, total)
	case n.policy == PolicyModeDerived:
		return nil, apperror.NewValidationError("Metodo di pagamento mancante")
	default:
		payments = reconcileItemized(req.Pagamenti, total)
	}

	now := time.Now()
	payload := &gateway.ReceiptPayload{
		ConfigurationTaxID: req.PartitaIVA,
		ReceiptDate:        now.Format("2006-01-02"),
		ReceiptTime:        now.Format("15:04"),

		CustomerName:    req.Intestatario,
		CustomerTaxID:   req.CodiceFiscale,
		CustomerAddress: req.Indirizzo,
		CustomerEmail:   req.Email,
		CustomerPhone:   req.Telefono,

		Items: items,

		TotalAmount:                   total,
		CashPaymentAmount:             payments.cash,
		ElectronicPaymentAmount:       payments.electronic,
		TicketRestaurantPaymentAmount: payments.ticket,
		TicketRestaurantQuantity:      payments.ticketCount,
		GoodsUncollectedAmount:        payments.goodsUncollected,
		ServicesUncollectedAmount:     payments.servicesUncollected,

		InvoiceIssuing: false,
		Tags:           buildTags(req),
	}

	return &NormalizeOutcome{Payload: payload}, nil
}

// filterItems drops zero-price lines and lines marked as notes. They are
// annotations on the receipt, not fiscal items, and the upstream must never
// see them.
func filterItems(items []request.LineItemRequest) []request.LineItemRequest {
	kept := make([]request.LineItemRequest, 0, len(items))
	for _, item := range items {
		if bool(item.Nota) {
			continue
		}
		if money.IsZero(item.Prezzo.Decimal()) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func mapItems(items []request.LineItemRequest) []gateway.ReceiptItem {
	mapped := make([]gateway.ReceiptItem, 0, len(items))
	for _, item := range items {
		quantity := item.Quantita.Int()
		if quantity < 1 {
			quantity = 1
		}

		mapped = append(mapped, gateway.ReceiptItem{
			Quantity:      quantity,
			Description:   item.Descrizione,
			UnitPrice:     money.Round2(item.Prezzo.Decimal()),
			VatRateCode:   item.IVA.Or(defaultVatRateCode),
			Discount:      money.Round2(item.Sconto.Decimal()),
			Complimentary: bool(item.Omaggio),
			SKU:           item.SKU,
		})
	}
	return mapped
}

type paymentTotals struct {
	cash                decimal.Decimal
	electronic          decimal.Decimal
	ticket              decimal.Decimal
	ticketCount         int
	goodsUncollected    decimal.Decimal
	servicesUncollected decimal.Decimal
}

// reconcileItemized takes the client-supplied buckets and absorbs any
// rounding discrepancy against the declared total into a single bucket, so
// that cash + electronic + ticket always equals the rounded total.
//
// Shortfall goes to electronic when positive, else cash when positive, else
// ticket. Surplus is taken from the first bucket that fully covers it, in
// order ticket, electronic, cash.
func reconcileItemized(breakdown *request.PaymentBreakdownRequest, total decimal.Decimal) paymentTotals {
	p := paymentTotals{
		cash:                decimal.Zero,
		electronic:          decimal.Zero,
		ticket:              decimal.Zero,
		goodsUncollected:    decimal.Zero,
		servicesUncollected: decimal.Zero,
	}
	if breakdown != nil {
		p.cash = money.Round2(breakdown.Contanti.Decimal())
		p.electronic = money.Round2(breakdown.Elettronico.Decimal())
		p.ticket = money.Round2(breakdown.TicketRestaurant.Decimal())
		p.ticketCount = breakdown.NumeroTicket.Int()
	}

	diff := total.Sub(money.Sum(p.cash, p.electronic, p.ticket))
	switch {
	case diff.IsPositive():
		switch {
		case p.electronic.IsPositive():
			p.electronic = money.Round2(p.electronic.Add(diff))
		case p.cash.IsPositive():
			p.cash = money.Round2(p.cash.Add(diff))
		default:
			p.ticket = money.Round2(p.ticket.Add(diff))
		}
	case diff.IsNegative():
		surplus := diff.Neg()
		switch {
		case p.ticket.GreaterThanOrEqual(surplus):
			p.ticket = money.Round2(p.ticket.Sub(surplus))
		case p.electronic.GreaterThanOrEqual(surplus):
			p.electronic = money.Round2(p.electronic.Sub(surplus))
		default:
			p.cash = money.Round2(p.cash.Sub(surplus))
		}
	}

	// The upstream rejects a positive ticket amount with a zero count.
	if p.ticket.IsPositive() && p.ticketCount < 1 {
		p.ticketCount = 1
	}

	return p
}

// deriveFromMode assigns the whole declared total to the bucket implied by
// the payment method; every other bucket stays zero.
func deriveFromMode(mode enum.PaymentMode, total decimal.Decimal) paymentTotals {
	p := paymentTotals{
		cash:                decimal.Zero,
		electronic:          decimal.Zero,
		ticket:              decimal.Zero,
		goodsUncollected:    decimal.Zero,
		servicesUncollected: decimal.Zero,
	}
	switch mode {
	case enum.PaymentModeCash:
		p.cash = total
	case enum.PaymentModeElectronic:
		p.electronic = total
	case enum.PaymentModeGoodsUncollected:
		p.goodsUncollected = total
	case enum.PaymentModeServicesUncollected:
		p.servicesUncollected = total
	}
	return p
}

// buildTags collects the optional opaque tags, lottery code first.
func buildTags(req *request.SubmitReceiptRequest) []string {
	var tags []string
	if req.CodiceLotteria != "" {
		tags = append(tags, "lotteria:"+req.CodiceLotteria)
	}
	if req.CodiceTicket != "" {
		tags = append(tags, "ticket:"+req.CodiceTicket)
	}
	return tags
}
