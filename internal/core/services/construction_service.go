package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxPunchHours = decimal.NewFromInt(24)

// constructionScope loads construction records of the caller's company.
type constructionScope struct {
	projects  portsrepo.ProjectReader
	employees portsrepo.EmployeeReader
}

func (c constructionScope) project(ctx context.Context, companyID, projectID string) (*domain.Project, error) {
	if err := requireUUID(projectID, "project"); err != nil {
		return nil, err
	}
	p, err := c.projects.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError("project not found")
	}
	return p, nil
}

func (c constructionScope) employee(ctx context.Context, companyID, employeeID string) (*domain.Employee, error) {
	if err := requireUUID(employeeID, "employee"); err != nil {
		return nil, err
	}
	e, err := c.employees.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError("employee not found")
	}
	return e, nil
}

// --- Projects ---

type projectService struct {
	BaseService
	scope       constructionScope
	projectRepo portsrepo.ProjectRepositoryFacade
	punchRepo   portsrepo.PunchReader
}

// NewProjectService creates a new ProjectService.
func NewProjectService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	employeeRepo portsrepo.EmployeeReader,
	punchRepo portsrepo.PunchReader,
	options ...ServiceOption,
) portssvc.ProjectSvcFacade {
	s := &projectService{
		projectRepo: projectRepo,
		punchRepo:   punchRepo,
		scope:       constructionScope{projects: projectRepo, employees: employeeRepo},
	}
	s.apply(options)
	return s
}

func validateProject(p domain.Project) error {
	if p.Budget.IsNegative() {
		return apperrors.NewValidationFailedError("budget must not be negative")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return apperrors.NewValidationFailedError("endDate must not be before startDate")
	}
	return nil
}

func (s *projectService) CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	start, err := dto.ParseOptionalDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	end, err := dto.ParseOptionalDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	status := domain.ProjectStatus(req.Status)
	if status == "" {
		status = domain.ProjectPlanned
	}
	project := domain.Project{
		ProjectID:   uuid.NewString(),
		CompanyID:   companyID,
		Name:        req.Name,
		Address:     req.Address,
		StartDate:   start,
		EndDate:     end,
		Budget:      req.Budget,
		Status:      status,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := validateProject(project); err != nil {
		return nil, err
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("company_id", companyID))
		return nil, err
	}
	return &project, nil
}

func (s *projectService) GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.scope.project(ctx, companyID, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.projectRepo.ListProjects(ctx, companyID)
}

func (s *projectService) UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	p, err := s.scope.project(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.StartDate != nil {
		if p.StartDate, err = dto.ParseOptionalDate(req.StartDate); err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
	}
	if req.EndDate != nil {
		if p.EndDate, err = dto.ParseOptionalDate(req.EndDate); err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
	}
	if req.Budget != nil {
		p.Budget = *req.Budget
	}
	if req.Status != nil {
		p.Status = domain.ProjectStatus(*req.Status)
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if err := validateProject(*p); err != nil {
		return nil, err
	}
	p.Touch(userID, s.Now())
	if err := s.projectRepo.UpdateProject(ctx, *p); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}
	return p, nil
}

func (s *projectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return err
	}
	if _, err := s.scope.project(ctx, companyID, projectID); err != nil {
		return err
	}
	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}
	return nil
}

// GetProjectLaborReport totals the project's punches per employee at their snapshot rates.
func (s *projectService) GetProjectLaborReport(ctx context.Context, userID, projectID string) (*domain.ProjectLaborReport, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	project, err := s.scope.project(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	punches, err := s.punchRepo.ListPunches(ctx, domain.PunchFilter{CompanyID: companyID, ProjectID: projectID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list punches for labor report", slog.String("project_id", projectID))
		return nil, err
	}

	report := BuildLaborReport(*project, punches)
	for i := range report.Employees {
		e, err := s.scope.employee(ctx, companyID, report.Employees[i].EmployeeID)
		if err != nil {
			s.LogDebug(ctx, "Employee missing from labor report", slog.String("employee_id", report.Employees[i].EmployeeID))
			continue
		}
		report.Employees[i].Name = e.FullName()
	}
	sort.SliceStable(report.Employees, func(i, j int) bool {
		return report.Employees[i].Name < report.Employees[j].Name
	})
	return report, nil
}

// BuildLaborReport folds punches into totals per employee, in first-seen order.
func BuildLaborReport(project domain.Project, punches []domain.Punch) *domain.ProjectLaborReport {
	report := &domain.ProjectLaborReport{
		Project:    project,
		TotalHours: decimal.Zero,
		LaborCost:  decimal.Zero,
		Employees:  []domain.EmployeeLabor{},
	}
	index := map[string]int{}
	for _, p := range punches {
		i, ok := index[p.EmployeeID]
		if !ok {
			i = len(report.Employees)
			index[p.EmployeeID] = i
			report.Employees = append(report.Employees, domain.EmployeeLabor{
				EmployeeID: p.EmployeeID,
				Hours:      decimal.Zero,
				Cost:       decimal.Zero,
			})
		}
		cost := p.Cost()
		report.Employees[i].Hours = report.Employees[i].Hours.Add(p.Hours)
		report.Employees[i].Cost = report.Employees[i].Cost.Add(cost)
		report.TotalHours = report.TotalHours.Add(p.Hours)
		report.LaborCost = report.LaborCost.Add(cost)
	}
	report.RemainingBudget = project.Budget.Sub(report.LaborCost)
	return report
}

// --- Employees ---

type employeeService struct {
	BaseService
	scope        constructionScope
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, options ...ServiceOption) portssvc.EmployeeSvcFacade {
	s := &employeeService{
		employeeRepo: employeeRepo,
		scope:        constructionScope{employees: employeeRepo},
	}
	s.apply(options)
	return s
}

func (s *employeeService) CreateEmployee(ctx context.Context, userID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("hourlyRate", req.HourlyRate); err != nil {
		return nil, err
	}
	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		CompanyID:   companyID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Position:    req.Position,
		HourlyRate:  req.HourlyRate,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("company_id", companyID))
		return nil, err
	}
	return &employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, userID, employeeID string) (*domain.Employee, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.scope.employee(ctx, companyID, employeeID)
}

func (s *employeeService) ListEmployees(ctx context.Context, userID string) ([]domain.Employee, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.employeeRepo.ListEmployees(ctx, companyID)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, userID, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	e, err := s.scope.employee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.HourlyRate != nil {
		if err := nonNegative("hourlyRate", *req.HourlyRate); err != nil {
			return nil, err
		}
		e.HourlyRate = *req.HourlyRate
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	e.Touch(userID, s.Now())
	if err := s.employeeRepo.UpdateEmployee(ctx, *e); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	return e, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, userID, employeeID string) error {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return err
	}
	if _, err := s.scope.employee(ctx, companyID, employeeID); err != nil {
		return err
	}
	punches, err := s.employeeRepo.CountPunches(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count punches", slog.String("employee_id", employeeID))
		return err
	}
	if punches > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("employee still has %d punches", punches))
	}
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}
	return nil
}

// --- Punches ---

type punchService struct {
	BaseService
	scope     constructionScope
	punchRepo portsrepo.PunchRepositoryFacade
}

// NewPunchService creates a new PunchService.
func NewPunchService(
	punchRepo portsrepo.PunchRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	employeeRepo portsrepo.EmployeeReader,
	options ...ServiceOption,
) portssvc.PunchSvcFacade {
	s := &punchService{
		punchRepo: punchRepo,
		scope:     constructionScope{projects: projectRepo, employees: employeeRepo},
	}
	s.apply(options)
	return s
}

func validateHours(h decimal.Decimal) error {
	if !h.IsPositive() || h.GreaterThan(maxPunchHours) {
		return apperrors.NewValidationFailedError("hours must be greater than 0 and at most 24")
	}
	return nil
}

// referenced reports a missing project or employee in a punch body as invalid input.
func referenced(err error, what string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return validationf("%s does not exist", what)
	}
	return err
}

func (s *punchService) CreatePunch(ctx context.Context, userID string, req dto.CreatePunchRequest) (*domain.Punch, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	employee, err := s.scope.employee(ctx, companyID, req.EmployeeID)
	if err != nil {
		return nil, referenced(err, "employee")
	}
	if _, err := s.scope.project(ctx, companyID, req.ProjectID); err != nil {
		return nil, referenced(err, "project")
	}
	if err := validateHours(req.Hours); err != nil {
		return nil, err
	}
	workDate, err := dto.ParseDate(req.WorkDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	punch := domain.Punch{
		PunchID:     uuid.NewString(),
		EmployeeID:  employee.EmployeeID,
		ProjectID:   req.ProjectID,
		WorkDate:    workDate,
		Hours:       req.Hours,
		HourlyRate:  employee.HourlyRate,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.punchRepo.SavePunch(ctx, punch); err != nil {
		s.LogError(ctx, err, "Failed to save punch",
			slog.String("employee_id", req.EmployeeID),
			slog.String("project_id", req.ProjectID))
		return nil, err
	}
	return &punch, nil
}

// punch loads a punch whose project belongs to the company.
func (s *punchService) punch(ctx context.Context, companyID, punchID string) (*domain.Punch, error) {
	if err := requireUUID(punchID, "punch"); err != nil {
		return nil, err
	}
	p, err := s.punchRepo.FindPunchByID(ctx, punchID)
	if err != nil {
		return nil, err
	}
	if _, err := s.scope.project(ctx, companyID, p.ProjectID); err != nil {
		return nil, apperrors.NewNotFoundError("punch not found")
	}
	return p, nil
}

func (s *punchService) GetPunch(ctx context.Context, userID, punchID string) (*domain.Punch, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.punch(ctx, companyID, punchID)
}

func (s *punchService) ListPunches(ctx context.Context, userID string, params dto.ListPunchesParams) ([]domain.Punch, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	filter := domain.PunchFilter{CompanyID: companyID}
	if params.ProjectID != "" {
		if _, err := s.scope.project(ctx, companyID, params.ProjectID); err != nil {
			return nil, err
		}
		filter.ProjectID = params.ProjectID
	}
	if params.EmployeeID != "" {
		if _, err := s.scope.employee(ctx, companyID, params.EmployeeID); err != nil {
			return nil, err
		}
		filter.EmployeeID = params.EmployeeID
	}
	if filter.From, err = dto.ParseOptionalDate(&params.From); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	if filter.To, err = dto.ParseOptionalDate(&params.To); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	return s.punchRepo.ListPunches(ctx, filter)
}

func (s *punchService) UpdatePunch(ctx context.Context, userID, punchID string, req dto.UpdatePunchRequest) (*domain.Punch, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	p, err := s.punch(ctx, companyID, punchID)
	if err != nil {
		return nil, err
	}
	if req.ProjectID != nil {
		if _, err := s.scope.project(ctx, companyID, *req.ProjectID); err != nil {
			return nil, referenced(err, "project")
		}
		p.ProjectID = *req.ProjectID
	}
	if req.WorkDate != nil {
		if p.WorkDate, err = dto.ParseDate(*req.WorkDate); err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
	}
	if req.Hours != nil {
		if err := validateHours(*req.Hours); err != nil {
			return nil, err
		}
		p.Hours = *req.Hours
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	p.Touch(userID, s.Now())
	if err := s.punchRepo.UpdatePunch(ctx, *p); err != nil {
		s.LogError(ctx, err, "Failed to update punch", slog.String("punch_id", punchID))
		return nil, err
	}
	return p, nil
}

func (s *punchService) DeletePunch(ctx context.Context, userID, punchID string) error {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return err
	}
	if _, err := s.punch(ctx, companyID, punchID); err != nil {
		return err
	}
	if err := s.punchRepo.DeletePunch(ctx, punchID); err != nil {
		s.LogError(ctx, err, "Failed to delete punch", slog.String("punch_id", punchID))
		return err
	}
	return nil
}
