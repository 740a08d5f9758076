package mapping

import (
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/SscSPs/property_management_app/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:   d.ProjectID,
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		Address:     d.Address,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Budget:      d.Budget,
		Status:      string(d.Status),
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:   m.ProjectID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Address:     m.Address,
		StartDate:   datePtr(m.StartDate),
		EndDate:     datePtr(m.EndDate),
		Budget:      m.Budget,
		Status:      domain.ProjectStatus(m.Status),
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProjectSlice converts model Projects to domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	return mapSlice(ms, ToDomainProject)
}

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:  d.EmployeeID,
		CompanyID:   d.CompanyID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Phone:       d.Phone,
		Position:    d.Position,
		HourlyRate:  d.HourlyRate,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		CompanyID:   m.CompanyID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		Position:    m.Position,
		HourlyRate:  m.HourlyRate,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts model Employees to domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	return mapSlice(ms, ToDomainEmployee)
}

// ToModelPunch converts a domain Punch to a model Punch
func ToModelPunch(d domain.Punch) models.Punch {
	return models.Punch{
		PunchID:     d.PunchID,
		EmployeeID:  d.EmployeeID,
		ProjectID:   d.ProjectID,
		WorkDate:    d.WorkDate,
		Hours:       d.Hours,
		HourlyRate:  d.HourlyRate,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPunch converts a model Punch to a domain Punch
func ToDomainPunch(m models.Punch) domain.Punch {
	return domain.Punch{
		PunchID:     m.PunchID,
		EmployeeID:  m.EmployeeID,
		ProjectID:   m.ProjectID,
		WorkDate:    domain.DateOnly(m.WorkDate),
		Hours:       m.Hours,
		HourlyRate:  m.HourlyRate,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPunchSlice converts model Punches to domain Punches
func ToDomainPunchSlice(ms []models.Punch) []domain.Punch {
	return mapSlice(ms, ToDomainPunch)
}
