package pgsql

import (
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:       newPgxCompanyRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
		AccessRequestRepo: newPgxAccessRequestRepository(dbPool),
		BuildingRepo:      newPgxBuildingRepository(dbPool),
		UnitRepo:          newPgxUnitRepository(dbPool),
		TenantRepo:        newPgxTenantRepository(dbPool),
		LeaseRepo:         newPgxLeaseRepository(dbPool),
		RentPaymentRepo:   newPgxRentPaymentRepository(dbPool),
		TransactionRepo:   newPgxTransactionRepository(dbPool),
		ProjectRepo:       newPgxProjectRepository(dbPool),
		EmployeeRepo:      newPgxEmployeeRepository(dbPool),
		PunchRepo:         newPgxPunchRepository(dbPool),
		ReportingRepo:     newPgxReportingRepository(dbPool),
	}
}
