package repositories

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its unique identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindCompanyByAccessCode retrieves the company owning an access code.
	FindCompanyByAccessCode(ctx context.Context, accessCode string) (*domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	UpdateCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}

// AccessRequestReader defines read operations for access requests
type AccessRequestReader interface {
	FindAccessRequestByID(ctx context.Context, requestID string) (*domain.AccessRequest, error)

	// ListAccessRequests lists a company's requests, optionally filtered by status.
	ListAccessRequests(ctx context.Context, companyID string, status *domain.AccessRequestStatus) ([]domain.AccessRequest, error)
}

// AccessRequestWriter defines write operations for access requests
type AccessRequestWriter interface {
	SaveAccessRequest(ctx context.Context, req domain.AccessRequest) error
	UpdateAccessRequest(ctx context.Context, req domain.AccessRequest) error
}

// AccessRequestRepositoryFacade combines all access request repository interfaces
type AccessRequestRepositoryFacade interface {
	AccessRequestReader
	AccessRequestWriter
}
