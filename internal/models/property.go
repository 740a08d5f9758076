package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Building is the persistence shape of the buildings table.
type Building struct {
	BuildingID        string          `db:"building_id" gorm:"column:building_id;primaryKey"`
	CompanyID         string          `db:"company_id" gorm:"column:company_id"`
	Name              string          `db:"name" gorm:"column:name"`
	Address           string          `db:"address" gorm:"column:address"`
	UnitCount         int             `db:"unit_count" gorm:"column:unit_count"`
	YearBuilt         *int            `db:"year_built" gorm:"column:year_built"`
	PurchasePrice     decimal.Decimal `db:"purchase_price" gorm:"column:purchase_price"`
	CurrentValue      decimal.Decimal `db:"current_value" gorm:"column:current_value"`
	RemainingDebt     decimal.Decimal `db:"remaining_debt" gorm:"column:remaining_debt"`
	OwnerContact      string          `db:"owner_contact" gorm:"column:owner_contact"`
	BankContact       string          `db:"bank_contact" gorm:"column:bank_contact"`
	ContractorContact string          `db:"contractor_contact" gorm:"column:contractor_contact"`
	Notes             string          `db:"notes" gorm:"column:notes"`
	AuditFields
}

func (Building) TableName() string { return "buildings" }

// Unit is the persistence shape of the units table.
type Unit struct {
	UnitID     string          `db:"unit_id" gorm:"column:unit_id;primaryKey"`
	BuildingID string          `db:"building_id" gorm:"column:building_id"`
	UnitNumber string          `db:"unit_number" gorm:"column:unit_number"`
	Address    string          `db:"address" gorm:"column:address"`
	Bedrooms   int             `db:"bedrooms" gorm:"column:bedrooms"`
	Bathrooms  decimal.Decimal `db:"bathrooms" gorm:"column:bathrooms"`
	UnitType   string          `db:"unit_type" gorm:"column:unit_type"`
	Notes      string          `db:"notes" gorm:"column:notes"`
	AuditFields
}

func (Unit) TableName() string { return "units" }

// Tenant is the persistence shape of the tenants table.
type Tenant struct {
	TenantID  string  `db:"tenant_id" gorm:"column:tenant_id;primaryKey"`
	CompanyID string  `db:"company_id" gorm:"column:company_id"`
	UnitID    *string `db:"unit_id" gorm:"column:unit_id"`
	Name      string  `db:"name" gorm:"column:name"`
	Email     string  `db:"email" gorm:"column:email"`
	Phone     string  `db:"phone" gorm:"column:phone"`
	Status    string  `db:"status" gorm:"column:status"`
	Notes     string  `db:"notes" gorm:"column:notes"`
	AuditFields
}

func (Tenant) TableName() string { return "tenants" }

// Lease is the persistence shape of the leases table.
type Lease struct {
	LeaseID       string          `db:"lease_id" gorm:"column:lease_id;primaryKey"`
	TenantID      string          `db:"tenant_id" gorm:"column:tenant_id"`
	StartDate     time.Time       `db:"start_date" gorm:"column:start_date"`
	EndDate       *time.Time      `db:"end_date" gorm:"column:end_date"`
	RentAmount    decimal.Decimal `db:"rent_amount" gorm:"column:rent_amount"`
	PaymentMethod string          `db:"payment_method" gorm:"column:payment_method"`
	PDFRef        *string         `db:"pdf_ref" gorm:"column:pdf_ref"`
	AuditFields
}

func (Lease) TableName() string { return "leases" }

// RentPayment is the persistence shape of the rent_payments table.
type RentPayment struct {
	PaymentID   string          `db:"payment_id" gorm:"column:payment_id;primaryKey"`
	LeaseID     string          `db:"lease_id" gorm:"column:lease_id"`
	Year        int             `db:"year" gorm:"column:year"`
	Month       int             `db:"month" gorm:"column:month"`
	Amount      decimal.Decimal `db:"amount" gorm:"column:amount"`
	IsConfirmed bool            `db:"is_confirmed" gorm:"column:is_confirmed"`
	ConfirmedAt *time.Time      `db:"confirmed_at" gorm:"column:confirmed_at"`
	ConfirmedBy *string         `db:"confirmed_by" gorm:"column:confirmed_by"`
	AuditFields
}

func (RentPayment) TableName() string { return "rent_payments" }

// Transaction is the persistence shape of the transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id" gorm:"column:transaction_id;primaryKey"`
	BuildingID      string          `db:"building_id" gorm:"column:building_id"`
	Category        string          `db:"category" gorm:"column:category"`
	Amount          decimal.Decimal `db:"amount" gorm:"column:amount"`
	TransactionDate time.Time       `db:"transaction_date" gorm:"column:transaction_date"`
	PaymentMethod   string          `db:"payment_method" gorm:"column:payment_method"`
	Reference       string          `db:"reference" gorm:"column:reference"`
	Source          string          `db:"source" gorm:"column:source"`
	PDFRef          *string         `db:"pdf_ref" gorm:"column:pdf_ref"`
	Notes           string          `db:"notes" gorm:"column:notes"`
	AuditFields
}

func (Transaction) TableName() string { return "transactions" }
