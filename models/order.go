package models

import (
	"time"
)

// Order statuses, ranked forward in this sequence.
const (
	StatusPorHacer  = "Por Hacer"
	StatusRealizada = "Realizada"
	StatusPagada    = "Pagada"
)

// StatusSequence is the forward order of the lifecycle.
var StatusSequence = []string{StatusPorHacer, StatusRealizada, StatusPagada}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CustomerName *string     `json:"customer_name,omitempty"`
	Status       string      `gorm:"type:enum('Por Hacer','Realizada','Pagada');default:'Por Hacer'" json:"status"`
	Total        float64     `gorm:"not null;default:0" json:"total"`
	Items        []OrderItem `json:"items"`
	Payments     []Payment   `json:"payment_method,omitempty"`

	// Timestamp is the creation instant; it decides which day an order
	// belongs to on the kitchen queue.
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
	// CreatedAt is the last status-change instant, overwritten on every
	// transition. Sales history buckets paid orders by this field.
	CreatedAt time.Time `json:"created_at"`
}

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"index" json:"-"`
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity float64 `gorm:"not null" json:"quantity"`
	Notes    string  `gorm:"type:text" json:"notes"`
}

type Payment struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	OrderID       uint    `gorm:"index" json:"-"`
	PaymentMethod string  `gorm:"not null" json:"paymentMethod"`
	Amount        float64 `gorm:"not null" json:"amount"`
}

// ComputeTotal derives an order total from its items. Totals are never
// stored independently of the items that produced them.
func ComputeTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}
