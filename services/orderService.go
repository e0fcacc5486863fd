package services

import (
	"errors"
	"fmt"

	"comanda-api/dtos"
	"comanda-api/models"
)

var ErrInsufficientPayment = errors.New("payment does not cover the order total")

// StatusRank places a status in the forward sequence
// Por Hacer → Realizada → Pagada. Unknown statuses rank -1.
func StatusRank(status string) int {
	for i, s := range models.StatusSequence {
		if s == status {
			return i
		}
	}
	return -1
}

// IsBackward reports whether moving from one status to another goes
// against the forward sequence. Backward moves are allowed but gated
// behind an explicit confirmation.
func IsBackward(from, to string) bool {
	return StatusRank(to) < StatusRank(from)
}

func ValidStatus(status string) bool {
	return StatusRank(status) >= 0
}

// ReconcilePayments allocates entered payment rows against an order
// total, in input order. Each row registers min(entered, remaining); a
// row that alone overpays its allocation is recorded as the full order
// total, which signals "this payment alone covers it" instead of
// silently truncating. Zero-amount rows are dropped. Change due is
// computed from the entered amounts, pre-clamp; a negative change due
// blocks the payment entirely.
func ReconcilePayments(total float64, rows []dtos.PaymentRow) ([]models.Payment, float64, error) {
	if total <= 0 {
		return nil, 0, fmt.Errorf("order total %v is not payable", total)
	}

	var entered float64
	remaining := total
	payments := make([]models.Payment, 0, len(rows))

	for _, row := range rows {
		paid := float64(row.Amount)
		entered += paid

		var register float64
		if remaining > 0 {
			register = paid
			if register > remaining {
				register = remaining
			}
		}
		remaining -= register

		if paid > register {
			register = total
		}
		if register > 0 {
			payments = append(payments, models.Payment{
				PaymentMethod: row.PaymentMethod,
				Amount:        register,
			})
		}
	}

	changeDue := entered - total
	if changeDue < 0 {
		return nil, changeDue, ErrInsufficientPayment
	}
	return payments, changeDue, nil
}
