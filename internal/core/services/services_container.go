package services

import (
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Company service first: it authorizes every other company-scoped service
	container.Company = NewCompanyService(repos.CompanyRepo, repos.UserRepo, repos.AccessRequestRepo)
	withAuth := WithAuthorizer(container.Company)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)
	container.Auth = NewAuthService(repos.CompanyRepo, repos.UserRepo, repos.AccessRequestRepo, container.TokenService)

	container.Building = NewBuildingService(repos.BuildingRepo, repos.UnitRepo, repos.TenantRepo, repos.LeaseRepo, withAuth)
	container.Unit = NewUnitService(repos.UnitRepo, repos.BuildingRepo, withAuth)
	container.Tenant = NewTenantService(repos.TenantRepo, repos.UnitRepo, repos.BuildingRepo, withAuth)
	container.Lease = NewLeaseService(repos.LeaseRepo, repos.TenantRepo, repos.UnitRepo, repos.BuildingRepo, withAuth)
	container.RentPayment = NewRentPaymentService(repos.RentPaymentRepo, repos.LeaseRepo, repos.TenantRepo, withAuth)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.BuildingRepo, withAuth)

	container.Project = NewProjectService(repos.ProjectRepo, repos.EmployeeRepo, repos.PunchRepo, withAuth)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, withAuth)
	container.Punch = NewPunchService(repos.PunchRepo, repos.ProjectRepo, repos.EmployeeRepo, withAuth)

	container.Reporting = NewReportingService(repos.ReportingRepo, repos.BuildingRepo, cfg.MaxReportMonths, withAuth)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CompanySvcFacade     = (*companyService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
	_ portssvc.BuildingSvcFacade    = (*buildingService)(nil)
	_ portssvc.UnitSvcFacade        = (*unitService)(nil)
	_ portssvc.TenantSvcFacade      = (*tenantService)(nil)
	_ portssvc.LeaseSvcFacade       = (*leaseService)(nil)
	_ portssvc.RentPaymentSvcFacade = (*rentPaymentService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ProjectSvcFacade     = (*projectService)(nil)
	_ portssvc.EmployeeSvcFacade    = (*employeeService)(nil)
	_ portssvc.PunchSvcFacade       = (*punchService)(nil)
)
