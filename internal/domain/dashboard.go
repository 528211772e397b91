package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentTransactionsLimit caps the recent list on the dashboard.
const RecentTransactionsLimit = 10

// ChartPoint is one slice of the income/expense chart, in currency units.
type ChartPoint struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// DashboardSummary contains the main dashboard metrics for a date range
type DashboardSummary struct {
	StartDate        time.Time      `json:"startDate"`
	EndDate          time.Time      `json:"endDate"`
	TransactionCount int            `json:"transactionCount"`
	Totals           TotalsView     `json:"totals"`
	Chart            []ChartPoint   `json:"chart"`
	Recent           []*Transaction `json:"recent"`
}

func NewDashboardSummary(start, end time.Time, txs []*Transaction) *DashboardSummary {
	agg := Aggregate(txs)

	recent := txs
	if len(recent) > RecentTransactionsLimit {
		recent = recent[:RecentTransactionsLimit]
	}
	if recent == nil {
		recent = []*Transaction{}
	}

	return &DashboardSummary{
		StartDate:        start,
		EndDate:          end,
		TransactionCount: agg.Count,
		Totals:           agg.Totals.View(),
		Chart: []ChartPoint{
			{Name: "Ingresos", Value: CentsToDecimal(agg.Totals.Ingreso)},
			{Name: "Egresos", Value: CentsToDecimal(agg.Totals.Egreso)},
		},
		Recent: recent,
	}
}
