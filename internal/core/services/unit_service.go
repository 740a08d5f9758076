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
)

type unitService struct {
	BaseService
	scope    companyScope
	unitRepo portsrepo.UnitRepositoryFacade
}

// NewUnitService creates a new UnitService.
func NewUnitService(
	unitRepo portsrepo.UnitRepositoryFacade,
	buildingRepo portsrepo.BuildingReader,
	options ...ServiceOption,
) portssvc.UnitSvcFacade {
	s := &unitService{
		unitRepo: unitRepo,
		scope:    companyScope{buildings: buildingRepo, units: unitRepo},
	}
	s.apply(options)
	return s
}

func (s *unitService) CreateUnit(ctx context.Context, userID string, req dto.CreateUnitRequest) (*domain.Unit, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	if _, err := s.scope.building(ctx, companyID, req.BuildingID); err != nil {
		return nil, err
	}
	if err := nonNegative("bathrooms", req.Bathrooms); err != nil {
		return nil, err
	}
	unit := domain.Unit{
		UnitID:      uuid.NewString(),
		BuildingID:  req.BuildingID,
		UnitNumber:  req.UnitNumber,
		Address:     req.Address,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		UnitType:    req.UnitType,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.unitRepo.SaveUnit(ctx, unit); err != nil {
		s.LogError(ctx, err, "Failed to save unit", slog.String("building_id", req.BuildingID))
		return nil, err
	}
	return &unit, nil
}

func (s *unitService) GetUnit(ctx context.Context, userID, unitID string) (*domain.Unit, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.scope.unit(ctx, companyID, unitID)
}

func (s *unitService) ListUnits(ctx context.Context, userID, buildingID string) ([]domain.Unit, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	if buildingID == "" {
		return s.unitRepo.ListUnitsByCompany(ctx, companyID)
	}
	if _, err := s.scope.building(ctx, companyID, buildingID); err != nil {
		return nil, err
	}
	units, err := s.unitRepo.ListUnitsByBuilding(ctx, buildingID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list units", slog.String("building_id", buildingID))
		return nil, err
	}
	return units, nil
}

func (s *unitService) UpdateUnit(ctx context.Context, userID, unitID string, req dto.UpdateUnitRequest) (*domain.Unit, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	u, err := s.scope.unit(ctx, companyID, unitID)
	if err != nil {
		return nil, err
	}
	if req.UnitNumber != nil {
		u.UnitNumber = *req.UnitNumber
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	if req.Bedrooms != nil {
		u.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		if err := nonNegative("bathrooms", *req.Bathrooms); err != nil {
			return nil, err
		}
		u.Bathrooms = *req.Bathrooms
	}
	if req.UnitType != nil {
		u.UnitType = *req.UnitType
	}
	if req.Notes != nil {
		u.Notes = *req.Notes
	}
	u.Touch(userID, s.Now())
	if err := s.unitRepo.UpdateUnit(ctx, *u); err != nil {
		s.LogError(ctx, err, "Failed to update unit", slog.String("unit_id", unitID))
		return nil, err
	}
	return u, nil
}

func (s *unitService) DeleteUnit(ctx context.Context, userID, unitID string) error {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return err
	}
	if _, err := s.scope.unit(ctx, companyID, unitID); err != nil {
		return err
	}
	tenants, err := s.unitRepo.CountTenants(ctx, unitID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count tenants", slog.String("unit_id", unitID))
		return err
	}
	if tenants > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("unit still has %d tenants assigned", tenants))
	}
	if err := s.unitRepo.DeleteUnit(ctx, unitID); err != nil {
		s.LogError(ctx, err, "Failed to delete unit", slog.String("unit_id", unitID))
		return err
	}
	return nil
}
