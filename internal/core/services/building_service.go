package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// buildingService implements BuildingSvcFacade.
type buildingService struct {
	BaseService
	scope        companyScope
	buildingRepo portsrepo.BuildingRepositoryFacade
	unitRepo     portsrepo.UnitReader
	tenantRepo   portsrepo.TenantReader
	leaseRepo    portsrepo.LeaseReader
}

// NewBuildingService creates a new BuildingService.
func NewBuildingService(
	buildingRepo portsrepo.BuildingRepositoryFacade,
	unitRepo portsrepo.UnitReader,
	tenantRepo portsrepo.TenantReader,
	leaseRepo portsrepo.LeaseReader,
	options ...ServiceOption,
) portssvc.BuildingSvcFacade {
	s := &buildingService{
		buildingRepo: buildingRepo,
		unitRepo:     unitRepo,
		tenantRepo:   tenantRepo,
		leaseRepo:    leaseRepo,
		scope:        companyScope{buildings: buildingRepo, units: unitRepo, tenants: tenantRepo, leases: leaseRepo},
	}
	s.apply(options)
	return s
}

func nonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return validationf("%s must not be negative", field)
	}
	return nil
}

func validateBuildingMoney(b domain.Building) error {
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"purchasePrice", b.PurchasePrice},
		{"currentValue", b.CurrentValue},
		{"remainingDebt", b.RemainingDebt},
	} {
		if err := nonNegative(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func (s *buildingService) CreateBuilding(ctx context.Context, userID string, req dto.CreateBuildingRequest) (*domain.Building, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	building := domain.Building{
		BuildingID:        uuid.NewString(),
		CompanyID:         companyID,
		Name:              req.Name,
		Address:           req.Address,
		UnitCount:         req.UnitCount,
		YearBuilt:         req.YearBuilt,
		PurchasePrice:     req.PurchasePrice,
		CurrentValue:      req.CurrentValue,
		RemainingDebt:     req.RemainingDebt,
		OwnerContact:      req.OwnerContact,
		BankContact:       req.BankContact,
		ContractorContact: req.ContractorContact,
		Notes:             req.Notes,
		AuditFields:       domain.NewAuditFields(userID, s.Now()),
	}
	if err := validateBuildingMoney(building); err != nil {
		return nil, err
	}
	if err := s.buildingRepo.SaveBuilding(ctx, building); err != nil {
		s.LogError(ctx, err, "Failed to save building", slog.String("company_id", companyID))
		return nil, err
	}
	s.LogInfo(ctx, "Building created", slog.String("building_id", building.BuildingID))
	return &building, nil
}

func (s *buildingService) GetBuilding(ctx context.Context, userID, buildingID string) (*domain.Building, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.scope.building(ctx, companyID, buildingID)
}

func (s *buildingService) ListBuildings(ctx context.Context, userID string) ([]domain.Building, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	buildings, err := s.buildingRepo.ListBuildings(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list buildings", slog.String("company_id", companyID))
		return nil, err
	}
	return buildings, nil
}

func (s *buildingService) UpdateBuilding(ctx context.Context, userID, buildingID string, req dto.UpdateBuildingRequest) (*domain.Building, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	b, err := s.scope.building(ctx, companyID, buildingID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Address != nil {
		b.Address = *req.Address
	}
	if req.UnitCount != nil {
		b.UnitCount = *req.UnitCount
	}
	if req.YearBuilt != nil {
		b.YearBuilt = req.YearBuilt
	}
	if req.PurchasePrice != nil {
		b.PurchasePrice = *req.PurchasePrice
	}
	if req.CurrentValue != nil {
		b.CurrentValue = *req.CurrentValue
	}
	if req.RemainingDebt != nil {
		b.RemainingDebt = *req.RemainingDebt
	}
	if req.OwnerContact != nil {
		b.OwnerContact = *req.OwnerContact
	}
	if req.BankContact != nil {
		b.BankContact = *req.BankContact
	}
	if req.ContractorContact != nil {
		b.ContractorContact = *req.ContractorContact
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	if err := validateBuildingMoney(*b); err != nil {
		return nil, err
	}
	b.Touch(userID, s.Now())
	if err := s.buildingRepo.UpdateBuilding(ctx, *b); err != nil {
		s.LogError(ctx, err, "Failed to update building", slog.String("building_id", buildingID))
		return nil, err
	}
	return b, nil
}

func (s *buildingService) DeleteBuilding(ctx context.Context, userID, buildingID string) error {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return err
	}
	if _, err := s.scope.building(ctx, companyID, buildingID); err != nil {
		return err
	}
	units, err := s.buildingRepo.CountUnits(ctx, buildingID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count units", slog.String("building_id", buildingID))
		return err
	}
	if units > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("building still has %d units", units))
	}
	if err := s.buildingRepo.DeleteBuilding(ctx, buildingID); err != nil {
		s.LogError(ctx, err, "Failed to delete building", slog.String("building_id", buildingID))
		return err
	}
	s.LogInfo(ctx, "Building deleted", slog.String("building_id", buildingID))
	return nil
}

// GetBuildingOverview reports occupancy and the current month's rent roll.
func (s *buildingService) GetBuildingOverview(ctx context.Context, userID, buildingID string) (*domain.BuildingOverview, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	b, err := s.scope.building(ctx, companyID, buildingID)
	if err != nil {
		return nil, err
	}
	units, err := s.unitRepo.ListUnitsByBuilding(ctx, buildingID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list units for overview", slog.String("building_id", buildingID))
		return nil, err
	}
	leases, err := s.leaseRepo.ListLeasesByBuilding(ctx, buildingID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leases for overview", slog.String("building_id", buildingID))
		return nil, err
	}

	overview := &domain.BuildingOverview{
		Building:    *b,
		Units:       len(units),
		MonthlyRent: decimal.Zero,
		Equity:      b.Equity(),
	}
	for _, u := range units {
		n, err := s.unitRepo.CountTenants(ctx, u.UnitID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count tenants", slog.String("unit_id", u.UnitID))
			return nil, err
		}
		if n > 0 {
			overview.OccupiedUnits++
		}
	}
	current := domain.YearMonthOf(s.Now())
	for _, l := range leases {
		if l.ActiveIn(current) {
			overview.ActiveLeases++
			overview.MonthlyRent = overview.MonthlyRent.Add(l.RentAmount)
		}
	}
	return overview, nil
}
