package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PaymentMode identifies the single bucket a receipt's declared total is
// assigned to when the client sends a payment method instead of an itemized
// breakdown.
type PaymentMode int

const (
	PaymentModeCash PaymentMode = iota
	PaymentModeElectronic
	PaymentModeGoodsUncollected
	PaymentModeServicesUncollected
)

func (m PaymentMode) String() string {
	return [...]string{"cash", "electronic", "goods_uncollected", "services_uncollected"}[m]
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts the canonical names plus the Italian aliases the POS
// clients send.
func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if i < int(PaymentModeCash) || i > int(PaymentModeServicesUncollected) {
			return fmt.Errorf("unknown payment mode %d", i)
		}
		*m = PaymentMode(i)
		return nil
	}
	mode, err := ParsePaymentMode(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParsePaymentMode maps a client-supplied payment method name to its mode.
func ParsePaymentMode(s string) (PaymentMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash", "contanti":
		return PaymentModeCash, nil
	case "electronic", "elettronico":
		return PaymentModeElectronic, nil
	case "goods_uncollected", "merce_non_riscossa":
		return PaymentModeGoodsUncollected, nil
	case "services_uncollected", "servizi_non_riscossi":
		return PaymentModeServicesUncollected, nil
	}
	return PaymentModeCash, fmt.Errorf("unknown payment mode %q", s)
}
