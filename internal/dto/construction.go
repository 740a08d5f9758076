package dto

import (
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Project DTOs ---

// CreateProjectRequest defines the data needed to create a construction project.
type CreateProjectRequest struct {
	Name      string          `json:"name" binding:"required,max=200"`
	Address   string          `json:"address" binding:"max=500"`
	StartDate *string         `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string         `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Budget    decimal.Decimal `json:"budget"`
	Status    string          `json:"status" binding:"omitempty,oneof=PLANNED ACTIVE COMPLETED ON_HOLD"`
	Notes     string          `json:"notes"`
}

// UpdateProjectRequest defines the fields that may change on a project.
type UpdateProjectRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Address   *string          `json:"address" binding:"omitempty,max=500"`
	StartDate *string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Budget    *decimal.Decimal `json:"budget"`
	Status    *string          `json:"status" binding:"omitempty,oneof=PLANNED ACTIVE COMPLETED ON_HOLD"`
	Notes     *string          `json:"notes"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID string               `json:"projectID"`
	Name      string               `json:"name"`
	Address   string               `json:"address"`
	StartDate *string              `json:"startDate"`
	EndDate   *string              `json:"endDate"`
	Budget    decimal.Decimal      `json:"budget"`
	Status    domain.ProjectStatus `json:"status"`
	Notes     string               `json:"notes"`
	AuditResponse
}

// ToProjectResponse converts a domain.Project to its DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:     p.ProjectID,
		Name:          p.Name,
		Address:       p.Address,
		StartDate:     FormatOptionalDate(p.StartDate),
		EndDate:       FormatOptionalDate(p.EndDate),
		Budget:        p.Budget,
		Status:        p.Status,
		Notes:         p.Notes,
		AuditResponse: toAuditResponse(p.AuditFields),
	}
}

// ToListProjectResponse converts projects to DTOs.
func ToListProjectResponse(ps []domain.Project) []ProjectResponse {
	return mapList(ps, ToProjectResponse)
}

// --- Employee DTOs ---

// CreateEmployeeRequest defines the data needed to create an employee.
type CreateEmployeeRequest struct {
	FirstName  string          `json:"firstName" binding:"required,max=100"`
	LastName   string          `json:"lastName" binding:"max=100"`
	Email      string          `json:"email" binding:"omitempty,email"`
	Phone      string          `json:"phone" binding:"max=50"`
	Position   string          `json:"position" binding:"max=100"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

// UpdateEmployeeRequest defines the fields that may change on an employee.
// Changing the rate does not touch existing punches.
type UpdateEmployeeRequest struct {
	FirstName  *string          `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName   *string          `json:"lastName" binding:"omitempty,max=100"`
	Email      *string          `json:"email" binding:"omitempty,email"`
	Phone      *string          `json:"phone" binding:"omitempty,max=50"`
	Position   *string          `json:"position" binding:"omitempty,max=100"`
	HourlyRate *decimal.Decimal `json:"hourlyRate"`
	IsActive   *bool            `json:"isActive"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID string          `json:"employeeID"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	FullName   string          `json:"fullName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	IsActive   bool            `json:"isActive"`
	AuditResponse
}

// ToEmployeeResponse converts a domain.Employee to its DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		FullName:      e.FullName(),
		Email:         e.Email,
		Phone:         e.Phone,
		Position:      e.Position,
		HourlyRate:    e.HourlyRate,
		IsActive:      e.IsActive,
		AuditResponse: toAuditResponse(e.AuditFields),
	}
}

// ToListEmployeeResponse converts employees to DTOs.
func ToListEmployeeResponse(es []domain.Employee) []EmployeeResponse {
	return mapList(es, ToEmployeeResponse)
}

// --- Punch DTOs ---

// CreatePunchRequest records hours worked.
type CreatePunchRequest struct {
	EmployeeID string          `json:"employeeID" binding:"required"`
	ProjectID  string          `json:"projectID" binding:"required"`
	WorkDate   string          `json:"workDate" binding:"required,datetime=2006-01-02"`
	Hours      decimal.Decimal `json:"hours"`
	Notes      string          `json:"notes"`
}

// UpdatePunchRequest defines the fields that may change on a punch.
// The employee and the snapshotted rate are fixed.
type UpdatePunchRequest struct {
	ProjectID *string          `json:"projectID"`
	WorkDate  *string          `json:"workDate" binding:"omitempty,datetime=2006-01-02"`
	Hours     *decimal.Decimal `json:"hours"`
	Notes     *string          `json:"notes"`
}

// ListPunchesParams defines query parameters for listing punches.
type ListPunchesParams struct {
	ProjectID  string `form:"projectId"`
	EmployeeID string `form:"employeeId"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// PunchResponse defines the data returned for a punch.
type PunchResponse struct {
	PunchID    string          `json:"punchID"`
	EmployeeID string          `json:"employeeID"`
	ProjectID  string          `json:"projectID"`
	WorkDate   string          `json:"workDate"`
	Hours      decimal.Decimal `json:"hours"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	Cost       decimal.Decimal `json:"cost"`
	Notes      string          `json:"notes"`
	AuditResponse
}

// ToPunchResponse converts a domain.Punch to its DTO.
func ToPunchResponse(p *domain.Punch) PunchResponse {
	return PunchResponse{
		PunchID:       p.PunchID,
		EmployeeID:    p.EmployeeID,
		ProjectID:     p.ProjectID,
		WorkDate:      FormatDate(p.WorkDate),
		Hours:         p.Hours,
		HourlyRate:    p.HourlyRate,
		Cost:          p.Cost(),
		Notes:         p.Notes,
		AuditResponse: toAuditResponse(p.AuditFields),
	}
}

// ToListPunchResponse converts punches to DTOs.
func ToListPunchResponse(ps []domain.Punch) []PunchResponse {
	return mapList(ps, ToPunchResponse)
}

// ProjectLaborReportResponse totals labor against a project budget.
type ProjectLaborReportResponse struct {
	Project         ProjectResponse        `json:"project"`
	TotalHours      decimal.Decimal        `json:"totalHours"`
	LaborCost       decimal.Decimal        `json:"laborCost"`
	Budget          decimal.Decimal        `json:"budget"`
	RemainingBudget decimal.Decimal        `json:"remainingBudget"`
	Employees       []domain.EmployeeLabor `json:"employees"`
}

// ToProjectLaborReportResponse converts a labor report to its DTO.
func ToProjectLaborReportResponse(r *domain.ProjectLaborReport) ProjectLaborReportResponse {
	return ProjectLaborReportResponse{
		Project:         ToProjectResponse(&r.Project),
		TotalHours:      r.TotalHours,
		LaborCost:       r.LaborCost,
		Budget:          r.Project.Budget,
		RemainingBudget: r.RemainingBudget,
		Employees:       r.Employees,
	}
}
