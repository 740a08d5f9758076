package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// BuildingReader defines read operations for building data
type BuildingReader interface {
	// FindBuildingByID retrieves a building by its unique identifier.
	FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error)

	// ListBuildings retrieves all buildings of a company ordered by name.
	ListBuildings(ctx context.Context, companyID string) ([]domain.Building, error)

	// CountUnits returns the number of units in a building.
	CountUnits(ctx context.Context, buildingID string) (int, error)
}

// BuildingWriter defines write operations for building data
type BuildingWriter interface {
	SaveBuilding(ctx context.Context, building domain.Building) error
	UpdateBuilding(ctx context.Context, building domain.Building) error
	DeleteBuilding(ctx context.Context, buildingID string) error
}

// BuildingRepositoryFacade combines all building-related repository interfaces
type BuildingRepositoryFacade interface {
	BuildingReader
	BuildingWriter
}

// UnitReader defines read operations for unit data
type UnitReader interface {
	FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error)
	ListUnitsByBuilding(ctx context.Context, buildingID string) ([]domain.Unit, error)

	// ListUnitsByCompany retrieves the units of every building of a company.
	ListUnitsByCompany(ctx context.Context, companyID string) ([]domain.Unit, error)

	// CountTenants returns the number of tenants assigned to a unit.
	CountTenants(ctx context.Context, unitID string) (int, error)
}

// UnitWriter defines write operations for unit data
type UnitWriter interface {
	SaveUnit(ctx context.Context, unit domain.Unit) error
	UpdateUnit(ctx context.Context, unit domain.Unit) error
	DeleteUnit(ctx context.Context, unitID string) error
}

// UnitRepositoryFacade combines all unit-related repository interfaces
type UnitRepositoryFacade interface {
	UnitReader
	UnitWriter
}

// TenantReader defines read operations for tenant data
type TenantReader interface {
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenants(ctx context.Context, companyID string) ([]domain.Tenant, error)
	ListTenantsByUnit(ctx context.Context, unitID string) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	SaveTenant(ctx context.Context, tenant domain.Tenant) error
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error
	DeleteTenant(ctx context.Context, tenantID string) error
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}

// LeaseReader defines read operations for lease data
type LeaseReader interface {
	FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error)
	ListLeasesByTenant(ctx context.Context, tenantID string) ([]domain.Lease, error)

	// ListLeasesByBuilding retrieves leases whose tenant is currently assigned to a unit of the building.
	ListLeasesByBuilding(ctx context.Context, buildingID string) ([]domain.Lease, error)
}

// LeaseWriter defines write operations for lease data
type LeaseWriter interface {
	SaveLease(ctx context.Context, lease domain.Lease) error
	UpdateLease(ctx context.Context, lease domain.Lease) error
	DeleteLease(ctx context.Context, leaseID string) error
}

// LeaseRepositoryFacade combines all lease-related repository interfaces
type LeaseRepositoryFacade interface {
	LeaseReader
	LeaseWriter
}

// RentPaymentReader defines read operations for rent payment data
type RentPaymentReader interface {
	FindRentPaymentByID(ctx context.Context, paymentID string) (*domain.RentPayment, error)

	// ListRentPaymentsByLease retrieves a lease's payments ordered by year and month.
	ListRentPaymentsByLease(ctx context.Context, leaseID string) ([]domain.RentPayment, error)
}

// RentPaymentWriter defines write operations for rent payment data
type RentPaymentWriter interface {
	// SaveRentPayments inserts payments in one transaction. A duplicate
	// (lease, year, month) fails the whole batch with a conflict.
	SaveRentPayments(ctx context.Context, payments []domain.RentPayment) error
	UpdateRentPayment(ctx context.Context, payment domain.RentPayment) error
	DeleteRentPayment(ctx context.Context, paymentID string) error
}

// RentPaymentRepositoryFacade combines all rent payment repository interfaces
type RentPaymentRepositoryFacade interface {
	RentPaymentReader
	RentPaymentWriter
}

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions lists a company's transactions newest first, honouring the filter's keyset cursor.
	ListTransactions(ctx context.Context, companyID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// ReportingRepository loads the raw rows the profitability aggregation consumes.
type ReportingRepository interface {
	// GetProfitabilityInputs loads buildings, lease rows, confirmed payments and
	// ledger rows for the given buildings within [from, to].
	GetProfitabilityInputs(ctx context.Context, buildingIDs []string, from, to time.Time) (*domain.ProfitabilityInputs, error)
}
