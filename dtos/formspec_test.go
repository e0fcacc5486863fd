package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSpecTypeTags(t *testing.T) {
	schema := FormSchema{
		Name: "payment",
		Fields: []FieldSpec{
			LabelField{Text: "Registrar pago"},
			RepeatableField{
				Name:    "payments",
				Label:   "Pagos",
				MaxRows: 4,
				Fields: []FieldSpec{
					SelectField{Name: "paymentMethod", Label: "Método", Options: []string{"Efectivo"}},
					TextField{Name: "amount", Label: "Monto", Required: true},
				},
			},
		},
	}

	raw, err := json.Marshal(schema)
	require.NoError(t, err)

	var decoded struct {
		Fields []map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Fields, 2)

	assert.Equal(t, "label", decoded.Fields[0]["type"])
	assert.Equal(t, "repeatable", decoded.Fields[1]["type"])

	// nested fields carry their own discriminator
	nested, ok := decoded.Fields[1]["fields"].([]any)
	require.True(t, ok)
	require.Len(t, nested, 2)
	assert.Equal(t, "select", nested[0].(map[string]any)["type"])
	assert.Equal(t, "text", nested[1].(map[string]any)["type"])
	assert.Equal(t, true, nested[1].(map[string]any)["required"])
}
