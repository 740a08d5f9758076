package gormsql

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormProjectRepository struct {
	BaseRepository
}

func newGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ProjectRepositoryFacade = (*GormProjectRepository)(nil)

func (r *GormProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	m, err := findOne[models.Project](ctx, r.DB, "project", "project_id = ?", projectID)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainProject(m)
	return &p, nil
}

func (r *GormProjectRepository) ListProjects(ctx context.Context, companyID string) ([]domain.Project, error) {
	var ms []models.Project
	if err := r.db(ctx).Where("company_id = ?", companyID).Order("name").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list projects", "project")
	}
	return mapping.ToDomainProjectSlice(ms), nil
}

func (r *GormProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	return translateError(r.db(ctx).Create(&m).Error, "save project", "project")
}

func (r *GormProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	res := r.db(ctx).Model(&models.Project{}).Where("project_id = ?", m.ProjectID).Updates(map[string]any{
		"name":            m.Name,
		"address":         m.Address,
		"start_date":      m.StartDate,
		"end_date":        m.EndDate,
		"budget":          m.Budget,
		"status":          m.Status,
		"notes":           m.Notes,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	return requireAffected(res, "update project", "project")
}

func (r *GormProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	res := r.db(ctx).Where("project_id = ?", projectID).Delete(&models.Project{})
	return requireAffected(res, "delete project", "project")
}

type GormEmployeeRepository struct {
	BaseRepository
}

func newGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*GormEmployeeRepository)(nil)

func (r *GormEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	m, err := findOne[models.Employee](ctx, r.DB, "employee", "employee_id = ?", employeeID)
	if err != nil {
		return nil, err
	}
	e := mapping.ToDomainEmployee(m)
	return &e, nil
}

func (r *GormEmployeeRepository) ListEmployees(ctx context.Context, companyID string) ([]domain.Employee, error) {
	var ms []models.Employee
	if err := r.db(ctx).Where("company_id = ?", companyID).Order("last_name, first_name").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list employees", "employee")
	}
	return mapping.ToDomainEmployeeSlice(ms), nil
}

func (r *GormEmployeeRepository) CountPunches(ctx context.Context, employeeID string) (int, error) {
	var n int64
	if err := r.db(ctx).Model(&models.Punch{}).Where("employee_id = ?", employeeID).Count(&n).Error; err != nil {
		return 0, translateError(err, "count punches", "employee")
	}
	return int(n), nil
}

func (r *GormEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	return translateError(r.db(ctx).Create(&m).Error, "save employee", "employee")
}

func (r *GormEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	res := r.db(ctx).Model(&models.Employee{}).Where("employee_id = ?", m.EmployeeID).Updates(map[string]any{
		"first_name":      m.FirstName,
		"last_name":       m.LastName,
		"email":           m.Email,
		"phone":           m.Phone,
		"position":        m.Position,
		"hourly_rate":     m.HourlyRate,
		"is_active":       m.IsActive,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	return requireAffected(res, "update employee", "employee")
}

func (r *GormEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	res := r.db(ctx).Where("employee_id = ?", employeeID).Delete(&models.Employee{})
	return requireAffected(res, "delete employee", "employee")
}

type GormPunchRepository struct {
	BaseRepository
}

func newGormPunchRepository(db *gorm.DB) *GormPunchRepository {
	return &GormPunchRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.PunchRepositoryFacade = (*GormPunchRepository)(nil)

func (r *GormPunchRepository) FindPunchByID(ctx context.Context, punchID string) (*domain.Punch, error) {
	m, err := findOne[models.Punch](ctx, r.DB, "punch", "punch_id = ?", punchID)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainPunch(m)
	return &p, nil
}

func (r *GormPunchRepository) ListPunches(ctx context.Context, filter domain.PunchFilter) ([]domain.Punch, error) {
	q := r.db(ctx).Table("punches p").Select("p.*").
		Joins("JOIN projects pr ON pr.project_id = p.project_id").
		Where("pr.company_id = ?", filter.CompanyID)
	if filter.ProjectID != "" {
		q = q.Where("p.project_id = ?", filter.ProjectID)
	}
	if filter.EmployeeID != "" {
		q = q.Where("p.employee_id = ?", filter.EmployeeID)
	}
	if filter.From != nil {
		q = q.Where("p.work_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("p.work_date <= ?", *filter.To)
	}

	var ms []models.Punch
	if err := q.Order("p.work_date, p.created_at").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list punches", "punch")
	}
	return mapping.ToDomainPunchSlice(ms), nil
}

func (r *GormPunchRepository) SavePunch(ctx context.Context, punch domain.Punch) error {
	m := mapping.ToModelPunch(punch)
	return translateError(r.db(ctx).Create(&m).Error, "save punch", "punch")
}

func (r *GormPunchRepository) UpdatePunch(ctx context.Context, punch domain.Punch) error {
	m := mapping.ToModelPunch(punch)
	res := r.db(ctx).Model(&models.Punch{}).Where("punch_id = ?", m.PunchID).Updates(map[string]any{
		"project_id":      m.ProjectID,
		"work_date":       m.WorkDate,
		"hours":           m.Hours,
		"notes":           m.Notes,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	return requireAffected(res, "update punch", "punch")
}

func (r *GormPunchRepository) DeletePunch(ctx context.Context, punchID string) error {
	res := r.db(ctx).Where("punch_id = ?", punchID).Delete(&models.Punch{})
	return requireAffected(res, "delete punch", "punch")
}
