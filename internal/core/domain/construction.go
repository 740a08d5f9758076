package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus tracks the state of a construction project.
type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "PLANNED"
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
)

// Project is a construction job with a budget.
type Project struct {
	ProjectID string          `json:"projectID"`
	CompanyID string          `json:"companyID"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	StartDate *time.Time      `json:"startDate,omitempty"`
	EndDate   *time.Time      `json:"endDate,omitempty"`
	Budget    decimal.Decimal `json:"budget"`
	Status    ProjectStatus   `json:"status"`
	Notes     string          `json:"notes"`
	AuditFields
}

// Employee is paid by the hour on construction projects.
type Employee struct {
	EmployeeID string          `json:"employeeID"`
	CompanyID  string          `json:"companyID"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// Punch records hours an employee worked on a project on one day.
// HourlyRate is copied from the employee when the punch is created.
type Punch struct {
	PunchID    string          `json:"punchID"`
	EmployeeID string          `json:"employeeID"`
	ProjectID  string          `json:"projectID"`
	WorkDate   time.Time       `json:"workDate"`
	Hours      decimal.Decimal `json:"hours"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	Notes      string          `json:"notes"`
	AuditFields
}

// Cost is hours times the snapshotted rate.
func (p Punch) Cost() decimal.Decimal {
	return p.Hours.Mul(p.HourlyRate)
}

// PunchFilter narrows a punch listing. Empty fields other than CompanyID are ignored.
type PunchFilter struct {
	CompanyID  string
	ProjectID  string
	EmployeeID string
	From       *time.Time
	To         *time.Time
}

// EmployeeLabor is one employee's share of a project's labor.
type EmployeeLabor struct {
	EmployeeID string          `json:"employeeID"`
	Name       string          `json:"name"`
	Hours      decimal.Decimal `json:"hours"`
	Cost       decimal.Decimal `json:"cost"`
}

// ProjectLaborReport totals hours and labor cost against the project budget.
type ProjectLaborReport struct {
	Project         Project         `json:"project"`
	TotalHours      decimal.Decimal `json:"totalHours"`
	LaborCost       decimal.Decimal `json:"laborCost"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
	Employees       []EmployeeLabor `json:"employees"`
}
