package services

import (
	"testing"

	"comanda-api/dtos"
	"comanda-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRank(t *testing.T) {
	assert.Equal(t, 0, StatusRank(models.StatusPorHacer))
	assert.Equal(t, 1, StatusRank(models.StatusRealizada))
	assert.Equal(t, 2, StatusRank(models.StatusPagada))
	assert.Equal(t, -1, StatusRank("Cancelada"))
}

func TestIsBackward(t *testing.T) {
	assert.False(t, IsBackward(models.StatusPorHacer, models.StatusRealizada))
	assert.True(t, IsBackward(models.StatusRealizada, models.StatusPorHacer))
	assert.False(t, IsBackward(models.StatusRealizada, models.StatusRealizada))
}

func TestReconcilePaymentsSingleOverpay(t *testing.T) {
	// one row covering more than the total registers the full total,
	// not the clamped remainder
	payments, changeDue, err := ReconcilePayments(2500, []dtos.PaymentRow{
		{PaymentMethod: "Efectivo", Amount: 3000},
	})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "Efectivo", payments[0].PaymentMethod)
	assert.Equal(t, 2500.0, payments[0].Amount)
	assert.Equal(t, 500.0, changeDue)
}

func TestReconcilePaymentsTwoRowsExact(t *testing.T) {
	payments, changeDue, err := ReconcilePayments(2500, []dtos.PaymentRow{
		{PaymentMethod: "Efectivo", Amount: 1000},
		{PaymentMethod: "Tarjeta", Amount: 1500},
	})
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 1000.0, payments[0].Amount)
	assert.Equal(t, 1500.0, payments[1].Amount)
	assert.Equal(t, 0.0, changeDue)
}

func TestReconcilePaymentsUnderpayBlocked(t *testing.T) {
	payments, changeDue, err := ReconcilePayments(2500, []dtos.PaymentRow{
		{PaymentMethod: "Efectivo", Amount: 2000},
	})
	assert.ErrorIs(t, err, ErrInsufficientPayment)
	assert.Nil(t, payments)
	assert.Equal(t, -500.0, changeDue)
}

func TestReconcilePaymentsSecondRowOverpays(t *testing.T) {
	// the later overpaying row is recorded as the full order total
	payments, changeDue, err := ReconcilePayments(2500, []dtos.PaymentRow{
		{PaymentMethod: "Efectivo", Amount: 1000},
		{PaymentMethod: "Sinpe", Amount: 2000},
	})
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 1000.0, payments[0].Amount)
	assert.Equal(t, 2500.0, payments[1].Amount)
	assert.Equal(t, 500.0, changeDue)
}

func TestReconcilePaymentsDropsZeroRows(t *testing.T) {
	payments, changeDue, err := ReconcilePayments(2500, []dtos.PaymentRow{
		{PaymentMethod: "Efectivo", Amount: 2500},
		{PaymentMethod: "Tarjeta", Amount: 0},
	})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "Efectivo", payments[0].PaymentMethod)
	assert.Equal(t, 0.0, changeDue)
}

func TestReconcilePaymentsUnpayableTotal(t *testing.T) {
	_, _, err := ReconcilePayments(0, []dtos.PaymentRow{
		{PaymentMethod: "Efectivo", Amount: 100},
	})
	assert.Error(t, err)
}

func TestComputeTotal(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Casado", Price: 1000, Quantity: 2},
		{Name: "Café", Price: 500, Quantity: 1},
	}
	assert.Equal(t, 2500.0, models.ComputeTotal(items))
	assert.Equal(t, 0.0, models.ComputeTotal(nil))

	// fractional quantities
	items = append(items, models.OrderItem{Name: "Batido", Price: 1000, Quantity: 0.5})
	assert.Equal(t, 3000.0, models.ComputeTotal(items))
}
