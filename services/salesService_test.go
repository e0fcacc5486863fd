package services

import (
	"testing"
	"time"

	"comanda-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPaidByDay(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)

	orders := []models.Order{
		{ID: 1, Status: models.StatusPagada, Total: 1000, CreatedAt: day1},
		{ID: 2, Status: models.StatusPagada, Total: 2000, CreatedAt: day1.Add(2 * time.Hour)},
		{ID: 3, Status: models.StatusPagada, Total: 500, CreatedAt: day2},
		{ID: 4, Status: models.StatusPorHacer, Total: 9999, CreatedAt: day2},
	}

	groups := GroupPaidByDay(orders)
	require.Len(t, groups, 2)

	// newest day first
	assert.Equal(t, "2024-01-02", groups[0].Date)
	assert.Equal(t, 500.0, groups[0].Total)

	assert.Equal(t, "2024-01-01", groups[1].Date)
	assert.Equal(t, 3000.0, groups[1].Total)
	// newest order first inside the day
	assert.Equal(t, uint(2), groups[1].Orders[0].ID)
}

func TestBuildDashboard(t *testing.T) {
	at := time.Date(2024, 1, 1, 14, 30, 0, 0, time.Local)
	orders := []models.Order{
		{
			ID: 1, Status: models.StatusPagada, Total: 2500, CreatedAt: at,
			Payments: []models.Payment{
				{PaymentMethod: "Efectivo", Amount: 1000},
				{PaymentMethod: "Tarjeta", Amount: 1500},
			},
		},
		// legacy order without a payment record counts under "Otro"
		{ID: 2, Status: models.StatusPagada, Total: 1500, CreatedAt: at.Add(time.Hour)},
		// unpaid orders are excluded
		{ID: 3, Status: models.StatusRealizada, Total: 8000, CreatedAt: at},
	}

	dash := BuildDashboard(orders)

	assert.Equal(t, 4000.0, dash.Summary.Total)
	assert.Equal(t, 2, dash.Summary.Count)
	assert.Equal(t, 2000.0, dash.Summary.Average)

	require.Len(t, dash.Daily, 1)
	assert.Equal(t, "2024-01-01", dash.Daily[0].Date)
	assert.Equal(t, 4000.0, dash.Daily[0].Total)

	methods := map[string]float64{}
	for _, m := range dash.Methods {
		methods[m.Name] = m.Value
	}
	assert.Equal(t, 1000.0, methods["Efectivo"])
	assert.Equal(t, 1500.0, methods["Tarjeta"])
	assert.Equal(t, 1500.0, methods["Otro"])

	require.Len(t, dash.Hourly, 24)
	assert.Equal(t, "14:00", dash.Hourly[14].Hour)
	assert.Equal(t, 2500.0, dash.Hourly[14].Total)
	assert.Equal(t, 1500.0, dash.Hourly[15].Total)
}

func TestBuildDashboardEmpty(t *testing.T) {
	dash := BuildDashboard(nil)
	assert.Equal(t, 0.0, dash.Summary.Average)
	assert.Equal(t, 0, dash.Summary.Count)
	assert.Empty(t, dash.Daily)
}
