package services

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// AuthorizerSvc resolves the caller's company and checks their role.
type AuthorizerSvc interface {
	// AuthorizeUserAction returns the caller's company ID when their role satisfies requiredRole.
	AuthorizeUserAction(ctx context.Context, userID string, requiredRole domain.UserRole) (string, error)
}

// CompanyReaderSvc defines read operations on the caller's company.
type CompanyReaderSvc interface {
	GetCompany(ctx context.Context, userID string) (*domain.Company, error)
	ListCompanyUsers(ctx context.Context, userID string) ([]domain.User, error)
	ListAccessRequests(ctx context.Context, userID string, status *domain.AccessRequestStatus) ([]domain.AccessRequest, error)
}

// CompanyAdminSvc defines admin-only operations on the caller's company.
type CompanyAdminSvc interface {
	// ApproveAccessRequest approves a pending request and grants role (MEMBER when empty).
	ApproveAccessRequest(ctx context.Context, userID, requestID string, role domain.UserRole) (*domain.AccessRequest, error)
	RejectAccessRequest(ctx context.Context, userID, requestID string) (*domain.AccessRequest, error)
	UpdateUserRole(ctx context.Context, userID, targetUserID string, role domain.UserRole) (*domain.User, error)
	RegenerateAccessCode(ctx context.Context, userID string) (*domain.Company, error)
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	AuthorizerSvc
	CompanyReaderSvc
	CompanyAdminSvc
}
