package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/google/uuid"
)

type tenantService struct {
	BaseService
	scope      companyScope
	tenantRepo portsrepo.TenantRepositoryFacade
}

// NewTenantService creates a new TenantService.
func NewTenantService(
	tenantRepo portsrepo.TenantRepositoryFacade,
	unitRepo portsrepo.UnitReader,
	buildingRepo portsrepo.BuildingReader,
	options ...ServiceOption,
) portssvc.TenantSvcFacade {
	s := &tenantService{
		tenantRepo: tenantRepo,
		scope:      companyScope{buildings: buildingRepo, units: unitRepo, tenants: tenantRepo},
	}
	s.apply(options)
	return s
}

// ownedUnit normalizes an optional unit reference and checks it belongs to the company.
func (s *tenantService) ownedUnit(ctx context.Context, companyID string, unitID *string) (*string, error) {
	if unitID == nil || *unitID == "" {
		return nil, nil
	}
	if _, err := s.scope.unit(ctx, companyID, *unitID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, validationf("unit %s does not exist", *unitID)
		}
		return nil, err
	}
	id := *unitID
	return &id, nil
}

func (s *tenantService) CreateTenant(ctx context.Context, userID string, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	unitID, err := s.ownedUnit(ctx, companyID, req.UnitID)
	if err != nil {
		return nil, err
	}
	status := domain.TenantStatus(req.Status)
	if status == "" {
		status = domain.TenantActive
	}
	tenant := domain.Tenant{
		TenantID:    uuid.NewString(),
		CompanyID:   companyID,
		UnitID:      unitID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      status,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		s.LogError(ctx, err, "Failed to save tenant", slog.String("company_id", companyID))
		return nil, err
	}
	return &tenant, nil
}

func (s *tenantService) GetTenant(ctx context.Context, userID, tenantID string) (*domain.Tenant, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.scope.tenant(ctx, companyID, tenantID)
}

func (s *tenantService) ListTenants(ctx context.Context, userID, unitID string) ([]domain.Tenant, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	if unitID == "" {
		return s.tenantRepo.ListTenants(ctx, companyID)
	}
	if _, err := s.scope.unit(ctx, companyID, unitID); err != nil {
		return nil, err
	}
	return s.tenantRepo.ListTenantsByUnit(ctx, unitID)
}

func (s *tenantService) UpdateTenant(ctx context.Context, userID, tenantID string, req dto.UpdateTenantRequest) (*domain.Tenant, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	t, err := s.scope.tenant(ctx, companyID, tenantID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Email != nil {
		t.Email = *req.Email
	}
	if req.Phone != nil {
		t.Phone = *req.Phone
	}
	if req.Status != nil {
		t.Status = domain.TenantStatus(*req.Status)
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}
	t.Touch(userID, s.Now())
	if err := s.tenantRepo.UpdateTenant(ctx, *t); err != nil {
		s.LogError(ctx, err, "Failed to update tenant", slog.String("tenant_id", tenantID))
		return nil, err
	}
	return t, nil
}

func (s *tenantService) DeleteTenant(ctx context.Context, userID, tenantID string) error {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return err
	}
	if _, err := s.scope.tenant(ctx, companyID, tenantID); err != nil {
		return err
	}
	if err := s.tenantRepo.DeleteTenant(ctx, tenantID); err != nil {
		s.LogError(ctx, err, "Failed to delete tenant", slog.String("tenant_id", tenantID))
		return err
	}
	return nil
}

func (s *tenantService) AssignUnit(ctx context.Context, userID, tenantID string, unitID *string) (*domain.Tenant, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	t, err := s.scope.tenant(ctx, companyID, tenantID)
	if err != nil {
		return nil, err
	}
	unit, err := s.ownedUnit(ctx, companyID, unitID)
	if err != nil {
		return nil, err
	}
	t.UnitID = unit
	t.Touch(userID, s.Now())
	if err := s.tenantRepo.UpdateTenant(ctx, *t); err != nil {
		s.LogError(ctx, err, "Failed to assign unit", slog.String("tenant_id", tenantID))
		return nil, err
	}
	s.LogInfo(ctx, "Tenant unit assignment changed", slog.String("tenant_id", tenantID))
	return t, nil
}
