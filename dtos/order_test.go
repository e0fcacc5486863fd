package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentAmountUnmarshal(t *testing.T) {
	var row PaymentRow

	// numeric amount
	require.NoError(t, json.Unmarshal([]byte(`{"paymentMethod":"Efectivo","amount":2500}`), &row))
	assert.Equal(t, PaymentAmount(2500), row.Amount)

	// formatted string with currency symbol and separator
	require.NoError(t, json.Unmarshal([]byte(`{"paymentMethod":"Efectivo","amount":"₡3,000"}`), &row))
	assert.Equal(t, PaymentAmount(3000), row.Amount)

	// unparsable becomes zero instead of failing the request
	require.NoError(t, json.Unmarshal([]byte(`{"paymentMethod":"Efectivo","amount":"efectivo"}`), &row))
	assert.Equal(t, PaymentAmount(0), row.Amount)
}
