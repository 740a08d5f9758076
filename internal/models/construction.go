package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is the persistence shape of the projects table.
type Project struct {
	ProjectID string          `db:"project_id" gorm:"column:project_id;primaryKey"`
	CompanyID string          `db:"company_id" gorm:"column:company_id"`
	Name      string          `db:"name" gorm:"column:name"`
	Address   string          `db:"address" gorm:"column:address"`
	StartDate *time.Time      `db:"start_date" gorm:"column:start_date"`
	EndDate   *time.Time      `db:"end_date" gorm:"column:end_date"`
	Budget    decimal.Decimal `db:"budget" gorm:"column:budget"`
	Status    string          `db:"status" gorm:"column:status"`
	Notes     string          `db:"notes" gorm:"column:notes"`
	AuditFields
}

func (Project) TableName() string { return "projects" }

// Employee is the persistence shape of the employees table.
type Employee struct {
	EmployeeID string          `db:"employee_id" gorm:"column:employee_id;primaryKey"`
	CompanyID  string          `db:"company_id" gorm:"column:company_id"`
	FirstName  string          `db:"first_name" gorm:"column:first_name"`
	LastName   string          `db:"last_name" gorm:"column:last_name"`
	Email      string          `db:"email" gorm:"column:email"`
	Phone      string          `db:"phone" gorm:"column:phone"`
	Position   string          `db:"position" gorm:"column:position"`
	HourlyRate decimal.Decimal `db:"hourly_rate" gorm:"column:hourly_rate"`
	IsActive   bool            `db:"is_active" gorm:"column:is_active"`
	AuditFields
}

func (Employee) TableName() string { return "employees" }

// Punch is the persistence shape of the punches table.
type Punch struct {
	PunchID    string          `db:"punch_id" gorm:"column:punch_id;primaryKey"`
	EmployeeID string          `db:"employee_id" gorm:"column:employee_id"`
	ProjectID  string          `db:"project_id" gorm:"column:project_id"`
	WorkDate   time.Time       `db:"work_date" gorm:"column:work_date"`
	Hours      decimal.Decimal `db:"hours" gorm:"column:hours"`
	HourlyRate decimal.Decimal `db:"hourly_rate" gorm:"column:hourly_rate"`
	Notes      string          `db:"notes" gorm:"column:notes"`
	AuditFields
}

func (Punch) TableName() string { return "punches" }
