package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenantStatus describes where a tenant is in the tenancy lifecycle.
type TenantStatus string

const (
	TenantActive   TenantStatus = "ACTIVE"
	TenantInactive TenantStatus = "INACTIVE"
	TenantFormer   TenantStatus = "FORMER"
)

// Tenant may exist without a unit (UnitID nil) before or after an assignment.
type Tenant struct {
	TenantID  string       `json:"tenantID"`
	CompanyID string       `json:"companyID"`
	UnitID    *string      `json:"unitID,omitempty"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Status    TenantStatus `json:"status"`
	Notes     string       `json:"notes"`
	AuditFields
}

// Lease is a tenancy record with fixed rent and a date range.
// EndDate nil means the lease is open-ended.
type Lease struct {
	LeaseID       string          `json:"leaseID"`
	TenantID      string          `json:"tenantID"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	RentAmount    decimal.Decimal `json:"rentAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	PDFRef        *string         `json:"pdfRef,omitempty"`
	AuditFields
}

// ActiveIn reports whether the lease covers any day of month m:
// start <= last day of m and (no end or end >= first day of m).
func (l Lease) ActiveIn(m YearMonth) bool {
	return activeIn(l.StartDate, l.EndDate, m)
}

// Overlaps reports whether two leases share at least one day.
func (l Lease) Overlaps(other Lease) bool {
	if l.EndDate != nil && l.EndDate.Before(other.StartDate) {
		return false
	}
	if other.EndDate != nil && other.EndDate.Before(l.StartDate) {
		return false
	}
	return true
}

func activeIn(start time.Time, end *time.Time, m YearMonth) bool {
	if start.After(m.LastDay()) {
		return false
	}
	return end == nil || !end.Before(m.FirstDay())
}

// RentPayment is the amount due for one lease and month, optionally confirmed as received.
type RentPayment struct {
	PaymentID   string          `json:"paymentID"`
	LeaseID     string          `json:"leaseID"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
	IsConfirmed bool            `json:"isConfirmed"`
	ConfirmedAt *time.Time      `json:"confirmedAt,omitempty"`
	ConfirmedBy *string         `json:"confirmedBy,omitempty"`
	AuditFields
}

// Period returns the month the payment is due for.
func (p RentPayment) Period() YearMonth {
	return YearMonth{Year: p.Year, Month: p.Month}
}
