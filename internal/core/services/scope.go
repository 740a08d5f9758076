package services

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
)

// companyScope loads property records and hides those of other companies.
// Buildings carry the company; units, tenants and leases reach it through their parents.
type companyScope struct {
	buildings portsrepo.BuildingReader
	units     portsrepo.UnitReader
	tenants   portsrepo.TenantReader
	leases    portsrepo.LeaseReader
}

func (c companyScope) building(ctx context.Context, companyID, buildingID string) (*domain.Building, error) {
	if err := requireUUID(buildingID, "building"); err != nil {
		return nil, err
	}
	b, err := c.buildings.FindBuildingByID(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if b.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError("building not found")
	}
	return b, nil
}

func (c companyScope) unit(ctx context.Context, companyID, unitID string) (*domain.Unit, error) {
	if err := requireUUID(unitID, "unit"); err != nil {
		return nil, err
	}
	u, err := c.units.FindUnitByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if _, err := c.building(ctx, companyID, u.BuildingID); err != nil {
		return nil, apperrors.NewNotFoundError("unit not found")
	}
	return u, nil
}

func (c companyScope) tenant(ctx context.Context, companyID, tenantID string) (*domain.Tenant, error) {
	if err := requireUUID(tenantID, "tenant"); err != nil {
		return nil, err
	}
	t, err := c.tenants.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if t.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError("tenant not found")
	}
	return t, nil
}

func (c companyScope) lease(ctx context.Context, companyID, leaseID string) (*domain.Lease, error) {
	if err := requireUUID(leaseID, "lease"); err != nil {
		return nil, err
	}
	l, err := c.leases.FindLeaseByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if _, err := c.tenant(ctx, companyID, l.TenantID); err != nil {
		return nil, apperrors.NewNotFoundError("lease not found")
	}
	return l, nil
}
