package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMode_Aliases(t *testing.T) {
	tests := []struct {
		input string
		want  PaymentMode
	}{
		{"cash", PaymentModeCash},
		{"contanti", PaymentModeCash},
		{"CONTANTI", PaymentModeCash},
		{"electronic", PaymentModeElectronic},
		{"elettronico", PaymentModeElectronic},
		{"merce_non_riscossa", PaymentModeGoodsUncollected},
		{"servizi_non_riscossi", PaymentModeServicesUncollected},
		{" cash ", PaymentModeCash},
	}

	for _, tt := range tests {
		mode, err := ParsePaymentMode(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, mode)
	}

	_, err := ParsePaymentMode("bancomat magico")
	assert.Error(t, err)
}

func TestPaymentMode_JSONRoundTrip(t *testing.T) {
	var mode PaymentMode
	require.NoError(t, json.Unmarshal([]byte(`"elettronico"`), &mode))
	assert.Equal(t, PaymentModeElectronic, mode)

	out, err := json.Marshal(mode)
	require.NoError(t, err)
	assert.Equal(t, `"electronic"`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`2`), &mode))
	assert.Equal(t, PaymentModeGoodsUncollected, mode)

	assert.Error(t, json.Unmarshal([]byte(`9`), &mode))
}
