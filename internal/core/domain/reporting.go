package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaseRevenueRow is a lease joined through tenant and unit to its building.
// Leases whose tenant has no unit never produce a row.
type LeaseRevenueRow struct {
	LeaseID    string
	BuildingID string
	StartDate  time.Time
	EndDate    *time.Time
	RentAmount decimal.Decimal
}

// ActiveIn applies the same month rule as Lease.ActiveIn.
func (r LeaseRevenueRow) ActiveIn(m YearMonth) bool {
	return activeIn(r.StartDate, r.EndDate, m)
}

// ConfirmedPaymentRow marks a lease month as confirmed paid.
type ConfirmedPaymentRow struct {
	LeaseID string
	Year    int
	Month   int
}

// LedgerRow is the part of a transaction the profitability report needs.
type LedgerRow struct {
	BuildingID      string
	Category        TransactionCategory
	Amount          decimal.Decimal
	TransactionDate time.Time
}

// ProfitabilityInputs is everything the aggregation reads for a set of buildings and a period.
type ProfitabilityInputs struct {
	Buildings         []Building
	Leases            []LeaseRevenueRow
	ConfirmedPayments []ConfirmedPaymentRow
	Ledger            []LedgerRow
}

// CashflowFigures is the revenue/expense breakdown used at every level of the report.
type CashflowFigures struct {
	LeaseRevenue decimal.Decimal `json:"leaseRevenue"`
	OtherRevenue decimal.Decimal `json:"otherRevenue"`
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetCashflow  decimal.Decimal `json:"netCashflow"`
}

// Add returns the element-wise sum of f and o.
func (f CashflowFigures) Add(o CashflowFigures) CashflowFigures {
	return CashflowFigures{
		LeaseRevenue: f.LeaseRevenue.Add(o.LeaseRevenue),
		OtherRevenue: f.OtherRevenue.Add(o.OtherRevenue),
		Revenue:      f.Revenue.Add(o.Revenue),
		Expenses:     f.Expenses.Add(o.Expenses),
		NetCashflow:  f.NetCashflow.Add(o.NetCashflow),
	}
}

// MonthlyFigures are the figures for one month.
type MonthlyFigures struct {
	Period YearMonth `json:"period"`
	CashflowFigures
}

// BuildingProfitability is one building's totals and month series.
type BuildingProfitability struct {
	BuildingID   string           `json:"buildingID"`
	BuildingName string           `json:"buildingName"`
	Summary      CashflowFigures  `json:"summary"`
	Months       []MonthlyFigures `json:"months"`
}

// ProfitabilityReport aggregates revenue, expenses and net cashflow over buildings and months.
type ProfitabilityReport struct {
	Start              YearMonth               `json:"start"`
	End                YearMonth               `json:"end"`
	ConfirmedOnly      bool                    `json:"confirmedOnly"`
	Buildings          []BuildingProfitability `json:"buildings"`
	Monthly            []MonthlyFigures        `json:"monthly"`
	Summary            CashflowFigures         `json:"summary"`
	IgnoredBuildingIDs []string                `json:"ignoredBuildingIDs"`
}
