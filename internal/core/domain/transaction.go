package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCategory splits ledger entries into revenue and expenses.
type TransactionCategory string

const (
	CategoryRevenue TransactionCategory = "REVENUE"
	CategoryExpense TransactionCategory = "EXPENSE"
)

// Valid reports whether c is a known category.
func (c TransactionCategory) Valid() bool {
	return c == CategoryRevenue || c == CategoryExpense
}

// Transaction is a one-off ledger entry tied to a building.
type Transaction struct {
	TransactionID   string              `json:"transactionID"`
	BuildingID      string              `json:"buildingID"`
	Category        TransactionCategory `json:"category"`
	Amount          decimal.Decimal     `json:"amount"` // Always positive; the category carries the sign
	TransactionDate time.Time           `json:"transactionDate"`
	PaymentMethod   string              `json:"paymentMethod"`
	Reference       string              `json:"reference"`
	Source          string              `json:"source"`
	PDFRef          *string             `json:"pdfRef,omitempty"`
	Notes           string              `json:"notes"`
	AuditFields
}

// Validate checks the invariants every stored transaction must hold.
func (t Transaction) Validate() error {
	if t.BuildingID == "" {
		return fmt.Errorf("building ID is required")
	}
	if !t.Category.Valid() {
		return fmt.Errorf("category must be REVENUE or EXPENSE, got %q", t.Category)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if t.TransactionDate.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	BuildingID string
	Category   *TransactionCategory
	From       *time.Time
	To         *time.Time
	Limit      int
	// Keyset cursor: entries strictly after (AfterDate, AfterCreatedAt, AfterID)
	// in descending order are returned.
	AfterDate      *time.Time
	AfterCreatedAt *time.Time
	AfterID        string
}
