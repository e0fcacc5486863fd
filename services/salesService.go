package services

import (
	"sort"

	"comanda-api/models"
	"comanda-api/utils"
)

// DayGroup is one sales-history bucket: every paid order of one local
// calendar day, recent first.
type DayGroup struct {
	Date   string         `json:"date"`
	Total  float64        `json:"total"`
	Orders []models.Order `json:"orders"`
}

type DashboardSummary struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type MethodTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type HourlyTotal struct {
	Hour  string  `json:"hour"`
	Total float64 `json:"total"`
}

type Dashboard struct {
	Summary DashboardSummary `json:"summary"`
	Daily   []DailyTotal     `json:"daily"`
	Methods []MethodTotal    `json:"payment_methods"`
	Hourly  []HourlyTotal    `json:"hourly"`
}

// GroupPaidByDay buckets paid orders by the local date of their last
// status change (the "paid at" instant), newest day first and newest
// order first inside each day.
func GroupPaidByDay(orders []models.Order) []DayGroup {
	buckets := make(map[string][]models.Order)
	for _, o := range orders {
		if o.Status != models.StatusPagada {
			continue
		}
		key := utils.DateKey(o.CreatedAt)
		buckets[key] = append(buckets[key], o)
	}

	groups := make([]DayGroup, 0, len(buckets))
	for key, dayOrders := range buckets {
		sort.Slice(dayOrders, func(i, j int) bool {
			return dayOrders[i].CreatedAt.After(dayOrders[j].CreatedAt)
		})
		var total float64
		for _, o := range dayOrders {
			total += o.Total
		}
		groups = append(groups, DayGroup{Date: key, Total: total, Orders: dayOrders})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Date > groups[j].Date })
	return groups
}

// BuildDashboard derives the sales metrics from paid orders: overall
// summary, per-day totals, payment-method breakdown and hourly totals.
// Orders whose payment record is missing (legacy data) count their full
// total under "Otro".
func BuildDashboard(orders []models.Order) Dashboard {
	var dash Dashboard
	dailyTotals := make(map[string]float64)
	methodTotals := make(map[string]float64)
	hourly := make([]float64, 24)

	for _, o := range orders {
		if o.Status != models.StatusPagada {
			continue
		}
		dash.Summary.Total += o.Total
		dash.Summary.Count++
		dailyTotals[utils.DateKey(o.CreatedAt)] += o.Total
		hourly[o.CreatedAt.Hour()] += o.Total

		if len(o.Payments) > 0 {
			for _, p := range o.Payments {
				methodTotals[p.PaymentMethod] += p.Amount
			}
		} else {
			methodTotals["Otro"] += o.Total
		}
	}
	if dash.Summary.Count > 0 {
		dash.Summary.Average = dash.Summary.Total / float64(dash.Summary.Count)
	}

	for date, total := range dailyTotals {
		dash.Daily = append(dash.Daily, DailyTotal{Date: date, Total: total})
	}
	sort.Slice(dash.Daily, func(i, j int) bool { return dash.Daily[i].Date < dash.Daily[j].Date })

	for name, value := range methodTotals {
		dash.Methods = append(dash.Methods, MethodTotal{Name: name, Value: value})
	}
	sort.Slice(dash.Methods, func(i, j int) bool { return dash.Methods[i].Name < dash.Methods[j].Name })

	for h, total := range hourly {
		dash.Hourly = append(dash.Hourly, HourlyTotal{Hour: utils.HourLabel(h), Total: total})
	}
	return dash
}
