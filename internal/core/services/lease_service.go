package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/google/uuid"
)

type leaseService struct {
	BaseService
	scope     companyScope
	leaseRepo portsrepo.LeaseRepositoryFacade
}

// NewLeaseService creates a new LeaseService.
func NewLeaseService(
	leaseRepo portsrepo.LeaseRepositoryFacade,
	tenantRepo portsrepo.TenantReader,
	unitRepo portsrepo.UnitReader,
	buildingRepo portsrepo.BuildingReader,
	options ...ServiceOption,
) portssvc.LeaseSvcFacade {
	s := &leaseService{
		leaseRepo: leaseRepo,
		scope:     companyScope{buildings: buildingRepo, units: unitRepo, tenants: tenantRepo, leases: leaseRepo},
	}
	s.apply(options)
	return s
}

func validateLease(l domain.Lease) error {
	if !l.RentAmount.IsPositive() {
		return apperrors.NewValidationFailedError("rentAmount must be positive")
	}
	if l.EndDate != nil && l.EndDate.Before(l.StartDate) {
		return apperrors.NewValidationFailedError("endDate must not be before startDate")
	}
	return nil
}

// checkOverlap rejects a lease whose period intersects another lease of the same tenant.
func (s *leaseService) checkOverlap(ctx context.Context, l domain.Lease) error {
	existing, err := s.leaseRepo.ListLeasesByTenant(ctx, l.TenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tenant leases", slog.String("tenant_id", l.TenantID))
		return err
	}
	for _, other := range existing {
		if other.LeaseID == l.LeaseID {
			continue
		}
		if l.Overlaps(other) {
			return apperrors.NewConflictError("lease overlaps lease " + other.LeaseID + " of the same tenant")
		}
	}
	return nil
}

func (s *leaseService) CreateLease(ctx context.Context, userID string, req dto.CreateLeaseRequest) (*domain.Lease, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	if _, err := s.scope.tenant(ctx, companyID, req.TenantID); err != nil {
		return nil, err
	}
	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	end, err := dto.ParseOptionalDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	lease := domain.Lease{
		LeaseID:       uuid.NewString(),
		TenantID:      req.TenantID,
		StartDate:     start,
		EndDate:       end,
		RentAmount:    req.RentAmount,
		PaymentMethod: req.PaymentMethod,
		PDFRef:        req.PDFRef,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	if err := validateLease(lease); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, lease); err != nil {
		return nil, err
	}
	if err := s.leaseRepo.SaveLease(ctx, lease); err != nil {
		s.LogError(ctx, err, "Failed to save lease", slog.String("tenant_id", req.TenantID))
		return nil, err
	}
	s.LogInfo(ctx, "Lease created", slog.String("lease_id", lease.LeaseID))
	return &lease, nil
}

func (s *leaseService) GetLease(ctx context.Context, userID, leaseID string) (*domain.Lease, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.scope.lease(ctx, companyID, leaseID)
}

// ListLeases lists a tenant's leases or the leases attributed to a building.
// One of the two filters is required.
func (s *leaseService) ListLeases(ctx context.Context, userID string, params dto.ListLeasesParams) ([]domain.Lease, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	switch {
	case params.TenantID != "":
		if _, err := s.scope.tenant(ctx, companyID, params.TenantID); err != nil {
			return nil, err
		}
		return s.leaseRepo.ListLeasesByTenant(ctx, params.TenantID)
	case params.BuildingID != "":
		if _, err := s.scope.building(ctx, companyID, params.BuildingID); err != nil {
			return nil, err
		}
		return s.leaseRepo.ListLeasesByBuilding(ctx, params.BuildingID)
	default:
		return nil, apperrors.NewValidationFailedError("tenantId or buildingId is required")
	}
}

func (s *leaseService) UpdateLease(ctx context.Context, userID, leaseID string, req dto.UpdateLeaseRequest) (*domain.Lease, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	l, err := s.scope.lease(ctx, companyID, leaseID)
	if err != nil {
		return nil, err
	}
	if req.StartDate != nil {
		start, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		l.StartDate = start
	}
	if req.ClearEndDate {
		l.EndDate = nil
	} else if req.EndDate != nil {
		end, err := dto.ParseOptionalDate(req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		l.EndDate = end
	}
	if req.RentAmount != nil {
		l.RentAmount = *req.RentAmount
	}
	if req.PaymentMethod != nil {
		l.PaymentMethod = *req.PaymentMethod
	}
	if req.PDFRef != nil {
		l.PDFRef = req.PDFRef
	}
	if err := validateLease(*l); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, *l); err != nil {
		return nil, err
	}
	l.Touch(userID, s.Now())
	if err := s.leaseRepo.UpdateLease(ctx, *l); err != nil {
		s.LogError(ctx, err, "Failed to update lease", slog.String("lease_id", leaseID))
		return nil, err
	}
	return l, nil
}

func (s *leaseService) DeleteLease(ctx context.Context, userID, leaseID string) error {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return err
	}
	if _, err := s.scope.lease(ctx, companyID, leaseID); err != nil {
		return err
	}
	if err := s.leaseRepo.DeleteLease(ctx, leaseID); err != nil {
		s.LogError(ctx, err, "Failed to delete lease", slog.String("lease_id", leaseID))
		return err
	}
	return nil
}
