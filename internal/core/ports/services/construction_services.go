package services

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/SscSPs/property_management_app/internal/dto"
)

// ProjectSvcFacade defines construction project operations.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error)
	GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, userID string) ([]domain.Project, error)
	UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, userID, projectID string) error
	// GetProjectLaborReport totals hours and cost per employee against the budget.
	GetProjectLaborReport(ctx context.Context, userID, projectID string) (*domain.ProjectLaborReport, error)
}

// EmployeeSvcFacade defines employee operations.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, userID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetEmployee(ctx context.Context, userID, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, userID string) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, userID, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, userID, employeeID string) error
}

// PunchSvcFacade defines time punch operations.
type PunchSvcFacade interface {
	CreatePunch(ctx context.Context, userID string, req dto.CreatePunchRequest) (*domain.Punch, error)
	GetPunch(ctx context.Context, userID, punchID string) (*domain.Punch, error)
	ListPunches(ctx context.Context, userID string, params dto.ListPunchesParams) ([]domain.Punch, error)
	UpdatePunch(ctx context.Context, userID, punchID string, req dto.UpdatePunchRequest) (*domain.Punch, error)
	DeletePunch(ctx context.Context, userID, punchID string) error
}
