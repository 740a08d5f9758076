package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/utils"
)

// companyService implements CompanySvcFacade and is the authorizer for every
// other company-scoped service.
type companyService struct {
	BaseService
	companyRepo       portsrepo.CompanyRepositoryFacade
	userRepo          portsrepo.UserRepositoryFacade
	accessRequestRepo portsrepo.AccessRequestRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	accessRequestRepo portsrepo.AccessRequestRepositoryFacade,
	options ...ServiceOption,
) portssvc.CompanySvcFacade {
	s := &companyService{
		companyRepo:       companyRepo,
		userRepo:          userRepo,
		accessRequestRepo: accessRequestRepo,
	}
	s.apply(options)
	s.Authorizer = s
	return s
}

// AuthorizeUserAction checks that the user is approved, belongs to an active
// company and holds at least requiredRole.
func (s *companyService) AuthorizeUserAction(ctx context.Context, userID string, requiredRole domain.UserRole) (string, error) {
	if _, err := uuidOrUnauthorized(userID); err != nil {
		return "", err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewAppError(http.StatusUnauthorized, "unknown user", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to load user for authorization", slog.String("user_id", userID))
		return "", err
	}
	if !user.IsApproved {
		return "", apperrors.ErrPendingApproval
	}
	if !user.Role.Satisfies(requiredRole) {
		return "", apperrors.NewForbiddenError(fmt.Sprintf("role %s required", requiredRole))
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, user.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load company for authorization",
			slog.String("user_id", userID),
			slog.String("company_id", user.CompanyID))
		return "", err
	}
	if !company.IsActive {
		return "", apperrors.NewForbiddenError("company is disabled")
	}
	return company.CompanyID, nil
}

func (s *companyService) GetCompany(ctx context.Context, userID string) (*domain.Company, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

func (s *companyService) ListCompanyUsers(ctx context.Context, userID string) ([]domain.User, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsersByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list company users", slog.String("company_id", companyID))
		return nil, err
	}
	return users, nil
}

func (s *companyService) ListAccessRequests(ctx context.Context, userID string, status *domain.AccessRequestStatus) ([]domain.AccessRequest, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	requests, err := s.accessRequestRepo.ListAccessRequests(ctx, companyID, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list access requests", slog.String("company_id", companyID))
		return nil, err
	}
	return requests, nil
}

// pendingRequest loads a request of the admin's company that is still open.
func (s *companyService) pendingRequest(ctx context.Context, companyID, requestID string) (*domain.AccessRequest, error) {
	if err := requireUUID(requestID, "access request"); err != nil {
		return nil, err
	}
	req, err := s.accessRequestRepo.FindAccessRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError("access request not found")
	}
	if req.Status != domain.AccessRequestPending {
		return nil, apperrors.NewConflictError(fmt.Sprintf("access request already %s", req.Status))
	}
	return req, nil
}

func (s *companyService) ApproveAccessRequest(ctx context.Context, userID, requestID string, role domain.UserRole) (*domain.AccessRequest, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = domain.RoleMember
	}
	if !role.Valid() {
		return nil, validationf("invalid role %q", role)
	}
	req, err := s.pendingRequest(ctx, companyID, requestID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load requesting user", slog.String("request_id", requestID))
		return nil, err
	}

	now := s.Now()
	user.IsApproved = true
	user.Role = role
	user.Touch(userID, now)
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to approve user", slog.String("user_id", user.UserID))
		return nil, err
	}

	req.Status = domain.AccessRequestApproved
	req.DecidedBy = &userID
	req.DecidedAt = &now
	req.Touch(userID, now)
	if err := s.accessRequestRepo.UpdateAccessRequest(ctx, *req); err != nil {
		s.LogError(ctx, err, "Failed to update access request", slog.String("request_id", requestID))
		return nil, err
	}
	s.LogInfo(ctx, "Access request approved",
		slog.String("request_id", requestID),
		slog.String("user_id", user.UserID),
		slog.String("role", string(role)))
	return req, nil
}

func (s *companyService) RejectAccessRequest(ctx context.Context, userID, requestID string) (*domain.AccessRequest, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	req, err := s.pendingRequest(ctx, companyID, requestID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	req.Status = domain.AccessRequestRejected
	req.DecidedBy = &userID
	req.DecidedAt = &now
	req.Touch(userID, now)
	if err := s.accessRequestRepo.UpdateAccessRequest(ctx, *req); err != nil {
		s.LogError(ctx, err, "Failed to update access request", slog.String("request_id", requestID))
		return nil, err
	}
	s.LogInfo(ctx, "Access request rejected", slog.String("request_id", requestID))
	return req, nil
}

func (s *companyService) UpdateUserRole(ctx context.Context, userID, targetUserID string, role domain.UserRole) (*domain.User, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, validationf("invalid role %q", role)
	}
	if userID == targetUserID {
		return nil, apperrors.NewValidationFailedError("admins cannot change their own role")
	}
	if err := requireUUID(targetUserID, "user"); err != nil {
		return nil, err
	}
	target, err := s.userRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if target.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	target.Role = role
	target.Touch(userID, s.Now())
	if err := s.userRepo.UpdateUser(ctx, *target); err != nil {
		s.LogError(ctx, err, "Failed to update user role", slog.String("target_user_id", targetUserID))
		return nil, err
	}
	return target, nil
}

func (s *companyService) RegenerateAccessCode(ctx context.Context, userID string) (*domain.Company, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	code, err := utils.GenerateAccessCode()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access code")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to generate access code", err)
	}
	company.AccessCode = code
	company.Touch(userID, s.Now())
	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to store access code", slog.String("company_id", companyID))
		return nil, err
	}
	s.LogInfo(ctx, "Access code regenerated", slog.String("company_id", companyID))
	return company, nil
}

func uuidOrUnauthorized(userID string) (string, error) {
	if err := requireUUID(userID, "user"); err != nil {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "unknown user", apperrors.ErrUnauthorized)
	}
	return userID, nil
}
