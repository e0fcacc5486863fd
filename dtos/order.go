package dtos

import (
	"encoding/json"
	"strconv"

	"comanda-api/utils"
)

type OrderItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity float64 `json:"quantity" binding:"required,min=0.1"`
	Notes    string  `json:"notes"`
}

type CreateOrderInput struct {
	CustomerName *string          `json:"customer_name,omitempty"`
	Items        []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type StatusInput struct {
	Status  string `json:"status" binding:"required,oneof='Por Hacer' 'Realizada' 'Pagada'"`
	Confirm bool   `json:"confirm"`
}

// PaymentAmount accepts either a number or a formatted string
// ("₡3,000"); strings are sanitized to digits and ".".
type PaymentAmount float64

func (a *PaymentAmount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = PaymentAmount(utils.ParseAmount(s))
		return nil
	}
	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = PaymentAmount(n)
	return nil
}

type PaymentRow struct {
	PaymentMethod string        `json:"paymentMethod" binding:"required"`
	Amount        PaymentAmount `json:"amount"`
}

type PayOrderInput struct {
	Payments []PaymentRow `json:"payments" binding:"required,min=1,max=4,dive"`
}
