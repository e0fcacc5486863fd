package controllers

import (
	"net/http"

	"comanda-api/dtos"

	"github.com/gin-gonic/gin"
)

var paymentMethods = []string{"Efectivo", "Sinpe", "Tarjeta"}

// Declarative form schemas the client renders. Each field is a tagged
// variant so a schema cannot omit the sub-fields its kind requires.
func GetPaymentFormSchema(c *gin.Context) {
	schema := dtos.FormSchema{
		Name: "payment",
		Fields: []dtos.FieldSpec{
			dtos.LabelField{Text: "Registrar pago"},
			dtos.RepeatableField{
				Name:    "payments",
				Label:   "Pagos",
				MaxRows: 4,
				Fields: []dtos.FieldSpec{
					dtos.SelectField{Name: "paymentMethod", Label: "Método", Options: paymentMethods},
					dtos.TextField{Name: "amount", Label: "Monto", Required: true},
				},
			},
		},
	}
	c.JSON(http.StatusOK, schema)
}

func GetWorkLogFormSchema(c *gin.Context) {
	schema := dtos.FormSchema{
		Name: "worklog",
		Fields: []dtos.FieldSpec{
			dtos.TextField{Name: "date", Label: "Fecha", Required: true},
			dtos.TextField{Name: "start", Label: "Hora inicio", Required: true},
			dtos.TextField{Name: "end", Label: "Hora fin", Required: true},
		},
	}
	c.JSON(http.StatusOK, schema)
}
