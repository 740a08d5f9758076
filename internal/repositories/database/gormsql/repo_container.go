package gormsql

import (
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"gorm.io/gorm"
)

// NewRepositoryProvider wires every gorm repository over one connection.
func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:       newGormCompanyRepository(db),
		UserRepo:          newGormUserRepository(db),
		AccessRequestRepo: newGormAccessRequestRepository(db),
		BuildingRepo:      newGormBuildingRepository(db),
		UnitRepo:          newGormUnitRepository(db),
		TenantRepo:        newGormTenantRepository(db),
		LeaseRepo:         newGormLeaseRepository(db),
		RentPaymentRepo:   newGormRentPaymentRepository(db),
		TransactionRepo:   newGormTransactionRepository(db),
		ProjectRepo:       newGormProjectRepository(db),
		EmployeeRepo:      newGormEmployeeRepository(db),
		PunchRepo:         newGormPunchRepository(db),
		ReportingRepo:     newGormReportingRepository(db),
	}
}
