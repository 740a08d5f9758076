package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaseRevenueRow is a lease joined through tenant and unit to a building.
type LeaseRevenueRow struct {
	LeaseID    string          `db:"lease_id" gorm:"column:lease_id"`
	BuildingID string          `db:"building_id" gorm:"column:building_id"`
	StartDate  time.Time       `db:"start_date" gorm:"column:start_date"`
	EndDate    *time.Time      `db:"end_date" gorm:"column:end_date"`
	RentAmount decimal.Decimal `db:"rent_amount" gorm:"column:rent_amount"`
}

// ConfirmedPaymentRow is a confirmed (lease, year, month).
type ConfirmedPaymentRow struct {
	LeaseID string `db:"lease_id" gorm:"column:lease_id"`
	Year    int    `db:"year" gorm:"column:year"`
	Month   int    `db:"month" gorm:"column:month"`
}

// LedgerRow is a transaction reduced to what the profitability report reads.
type LedgerRow struct {
	BuildingID      string          `db:"building_id" gorm:"column:building_id"`
	Category        string          `db:"category" gorm:"column:category"`
	Amount          decimal.Decimal `db:"amount" gorm:"column:amount"`
	TransactionDate time.Time       `db:"transaction_date" gorm:"column:transaction_date"`
}
