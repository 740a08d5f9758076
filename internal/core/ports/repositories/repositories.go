package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both the pgx and the gorm backends build one of these.
type RepositoryProvider struct {
	CompanyRepo       CompanyRepositoryFacade
	UserRepo          UserRepositoryFacade
	AccessRequestRepo AccessRequestRepositoryFacade
	BuildingRepo      BuildingRepositoryFacade
	UnitRepo          UnitRepositoryFacade
	TenantRepo        TenantRepositoryFacade
	LeaseRepo         LeaseRepositoryFacade
	RentPaymentRepo   RentPaymentRepositoryFacade
	TransactionRepo   TransactionRepositoryFacade
	ProjectRepo       ProjectRepositoryFacade
	EmployeeRepo      EmployeeRepositoryFacade
	PunchRepo         PunchRepositoryFacade
	ReportingRepo     ReportingRepository
}
