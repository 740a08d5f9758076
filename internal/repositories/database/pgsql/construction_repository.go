package pgsql

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) *PgxProjectRepository {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectSelect = `
SELECT project_id, company_id, name, address, start_date, end_date, budget, status, notes,
	created_at, created_by, last_updated_at, last_updated_by
FROM projects
`

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	m, err := collectOne[models.Project](ctx, r.Pool, "project", projectSelect+" WHERE project_id = $1", projectID)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainProject(m)
	return &p, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, companyID string) ([]domain.Project, error) {
	ms, err := collect[models.Project](ctx, r.Pool, "list projects", projectSelect+" WHERE company_id = $1 ORDER BY name", companyID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainProjectSlice(ms), nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO projects (project_id, company_id, name, address, start_date, end_date, budget, status, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.ProjectID, m.CompanyID, m.Name, m.Address, m.StartDate, m.EndDate, m.Budget, m.Status, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save project", "project")
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE projects
		SET name = $1, address = $2, start_date = $3, end_date = $4, budget = $5, status = $6, notes = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE project_id = $10`,
		m.Name, m.Address, m.StartDate, m.EndDate, m.Budget, m.Status, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, m.ProjectID,
	)
	if err != nil {
		return translateError(err, "update project", "project")
	}
	return requireAffected(tag, "project")
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1`, projectID)
	if err != nil {
		return translateError(err, "delete project", "project")
	}
	return requireAffected(tag, "project")
}

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeSelect = `
SELECT employee_id, company_id, first_name, last_name, email, phone, position, hourly_rate, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM employees
`

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	m, err := collectOne[models.Employee](ctx, r.Pool, "employee", employeeSelect+" WHERE employee_id = $1", employeeID)
	if err != nil {
		return nil, err
	}
	e := mapping.ToDomainEmployee(m)
	return &e, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, companyID string) ([]domain.Employee, error) {
	ms, err := collect[models.Employee](ctx, r.Pool, "list employees", employeeSelect+" WHERE company_id = $1 ORDER BY last_name, first_name", companyID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainEmployeeSlice(ms), nil
}

func (r *PgxEmployeeRepository) CountPunches(ctx context.Context, employeeID string) (int, error) {
	var n int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM punches WHERE employee_id = $1`, employeeID).Scan(&n)
	if err != nil {
		return 0, translateError(err, "count punches", "employee")
	}
	return n, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO employees (employee_id, company_id, first_name, last_name, email, phone, position, hourly_rate, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.EmployeeID, m.CompanyID, m.FirstName, m.LastName, m.Email, m.Phone, m.Position, m.HourlyRate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save employee", "employee")
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, phone = $4, position = $5, hourly_rate = $6, is_active = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE employee_id = $10`,
		m.FirstName, m.LastName, m.Email, m.Phone, m.Position, m.HourlyRate, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy, m.EmployeeID,
	)
	if err != nil {
		return translateError(err, "update employee", "employee")
	}
	return requireAffected(tag, "employee")
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return translateError(err, "delete employee", "employee")
	}
	return requireAffected(tag, "employee")
}

type PgxPunchRepository struct {
	BaseRepository
}

func newPgxPunchRepository(pool *pgxpool.Pool) *PgxPunchRepository {
	return &PgxPunchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PunchRepositoryFacade = (*PgxPunchRepository)(nil)

const punchSelect = `
SELECT p.punch_id, p.employee_id, p.project_id, p.work_date, p.hours, p.hourly_rate, p.notes,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM punches p
`

func (r *PgxPunchRepository) FindPunchByID(ctx context.Context, punchID string) (*domain.Punch, error) {
	m, err := collectOne[models.Punch](ctx, r.Pool, "punch", punchSelect+" WHERE p.punch_id = $1", punchID)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainPunch(m)
	return &p, nil
}

func (r *PgxPunchRepository) ListPunches(ctx context.Context, filter domain.PunchFilter) ([]domain.Punch, error) {
	f := &filterBuilder{}
	f.add("pr.company_id = ?", filter.CompanyID)
	if filter.ProjectID != "" {
		f.add("p.project_id = ?", filter.ProjectID)
	}
	if filter.EmployeeID != "" {
		f.add("p.employee_id = ?", filter.EmployeeID)
	}
	if filter.From != nil {
		f.add("p.work_date >= ?", *filter.From)
	}
	if filter.To != nil {
		f.add("p.work_date <= ?", *filter.To)
	}
	query := punchSelect + " JOIN projects pr ON pr.project_id = p.project_id" + f.where() +
		" ORDER BY p.work_date, p.created_at"
	ms, err := collect[models.Punch](ctx, r.Pool, "list punches", query, f.args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainPunchSlice(ms), nil
}

func (r *PgxPunchRepository) SavePunch(ctx context.Context, punch domain.Punch) error {
	m := mapping.ToModelPunch(punch)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO punches (punch_id, employee_id, project_id, work_date, hours, hourly_rate, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.PunchID, m.EmployeeID, m.ProjectID, m.WorkDate, m.Hours, m.HourlyRate, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save punch", "punch")
}

func (r *PgxPunchRepository) UpdatePunch(ctx context.Context, punch domain.Punch) error {
	m := mapping.ToModelPunch(punch)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE punches
		SET project_id = $1, work_date = $2, hours = $3, notes = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE punch_id = $7`,
		m.ProjectID, m.WorkDate, m.Hours, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, m.PunchID,
	)
	if err != nil {
		return translateError(err, "update punch", "punch")
	}
	return requireAffected(tag, "punch")
}

func (r *PgxPunchRepository) DeletePunch(ctx context.Context, punchID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM punches WHERE punch_id = $1`, punchID)
	if err != nil {
		return translateError(err, "delete punch", "punch")
	}
	return requireAffected(tag, "punch")
}
