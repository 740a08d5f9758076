package services

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/SscSPs/property_management_app/internal/dto"
)

// BuildingSvcFacade defines building operations scoped to the caller's company.
type BuildingSvcFacade interface {
	CreateBuilding(ctx context.Context, userID string, req dto.CreateBuildingRequest) (*domain.Building, error)
	GetBuilding(ctx context.Context, userID, buildingID string) (*domain.Building, error)
	ListBuildings(ctx context.Context, userID string) ([]domain.Building, error)
	UpdateBuilding(ctx context.Context, userID, buildingID string, req dto.UpdateBuildingRequest) (*domain.Building, error)
	// DeleteBuilding fails with a conflict while the building still has units.
	DeleteBuilding(ctx context.Context, userID, buildingID string) error
	// GetBuildingOverview reports occupancy, this month's rent roll and equity.
	GetBuildingOverview(ctx context.Context, userID, buildingID string) (*domain.BuildingOverview, error)
}

// UnitSvcFacade defines unit operations.
type UnitSvcFacade interface {
	CreateUnit(ctx context.Context, userID string, req dto.CreateUnitRequest) (*domain.Unit, error)
	GetUnit(ctx context.Context, userID, unitID string) (*domain.Unit, error)
	// ListUnits lists one building's units, or every unit of the company when buildingID is empty.
	ListUnits(ctx context.Context, userID, buildingID string) ([]domain.Unit, error)
	UpdateUnit(ctx context.Context, userID, unitID string, req dto.UpdateUnitRequest) (*domain.Unit, error)
	// DeleteUnit fails with a conflict while tenants are assigned to the unit.
	DeleteUnit(ctx context.Context, userID, unitID string) error
}

// TenantSvcFacade defines tenant operations.
type TenantSvcFacade interface {
	CreateTenant(ctx context.Context, userID string, req dto.CreateTenantRequest) (*domain.Tenant, error)
	GetTenant(ctx context.Context, userID, tenantID string) (*domain.Tenant, error)
	ListTenants(ctx context.Context, userID, unitID string) ([]domain.Tenant, error)
	UpdateTenant(ctx context.Context, userID, tenantID string, req dto.UpdateTenantRequest) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, userID, tenantID string) error
	// AssignUnit moves a tenant to unitID, or unassigns them when unitID is nil.
	AssignUnit(ctx context.Context, userID, tenantID string, unitID *string) (*domain.Tenant, error)
}

// LeaseSvcFacade defines lease operations. A tenant's leases never overlap.
type LeaseSvcFacade interface {
	CreateLease(ctx context.Context, userID string, req dto.CreateLeaseRequest) (*domain.Lease, error)
	GetLease(ctx context.Context, userID, leaseID string) (*domain.Lease, error)
	ListLeases(ctx context.Context, userID string, params dto.ListLeasesParams) ([]domain.Lease, error)
	UpdateLease(ctx context.Context, userID, leaseID string, req dto.UpdateLeaseRequest) (*domain.Lease, error)
	DeleteLease(ctx context.Context, userID, leaseID string) error
}

// RentPaymentSvcFacade defines rent payment operations.
type RentPaymentSvcFacade interface {
	// GenerateRentSchedule creates the missing payment rows for every month the
	// lease is active up to through. Open-ended leases require through.
	GenerateRentSchedule(ctx context.Context, userID, leaseID string, through *domain.YearMonth) ([]domain.RentPayment, error)
	CreateRentPayment(ctx context.Context, userID, leaseID string, req dto.CreateRentPaymentRequest) (*domain.RentPayment, error)
	ListRentPayments(ctx context.Context, userID, leaseID string) ([]domain.RentPayment, error)
	ConfirmRentPayment(ctx context.Context, userID, paymentID string) (*domain.RentPayment, error)
	UnconfirmRentPayment(ctx context.Context, userID, paymentID string) (*domain.RentPayment, error)
	DeleteRentPayment(ctx context.Context, userID, paymentID string) error
}

// TransactionSvcFacade defines ledger transaction operations.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	// ListTransactions returns one page, newest first, and the token of the next page ("" on the last).
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
