package repositories

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// ProjectReader defines read operations for construction projects
type ProjectReader interface {
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, companyID string) ([]domain.Project, error)
}

// ProjectWriter defines write operations for construction projects
type ProjectWriter interface {
	SaveProject(ctx context.Context, project domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}

// EmployeeReader defines read operations for employees
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, companyID string) ([]domain.Employee, error)
	CountPunches(ctx context.Context, employeeID string) (int, error)
}

// EmployeeWriter defines write operations for employees
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

// PunchReader defines read operations for time punches
type PunchReader interface {
	FindPunchByID(ctx context.Context, punchID string) (*domain.Punch, error)

	// ListPunches lists punches ordered by work date, filtered by project, employee and date range.
	ListPunches(ctx context.Context, filter domain.PunchFilter) ([]domain.Punch, error)
}

// PunchWriter defines write operations for time punches
type PunchWriter interface {
	SavePunch(ctx context.Context, punch domain.Punch) error
	UpdatePunch(ctx context.Context, punch domain.Punch) error
	DeletePunch(ctx context.Context, punchID string) error
}

// PunchRepositoryFacade combines all punch repository interfaces
type PunchRepositoryFacade interface {
	PunchReader
	PunchWriter
}
