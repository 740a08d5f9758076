package mapping

import (
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/SscSPs/property_management_app/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		AccessCode:  d.AccessCode,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		AccessCode:  m.AccessCode,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		CompanyID:    d.CompanyID,
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		Role:         string(d.Role),
		IsVerified:   d.IsVerified,
		IsApproved:   d.IsApproved,
		LastLoginAt:  d.LastLoginAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		CompanyID:    m.CompanyID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		IsVerified:   m.IsVerified,
		IsApproved:   m.IsApproved,
		LastLoginAt:  utcPtr(m.LastLoginAt),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	return mapSlice(ms, ToDomainUser)
}

// ToModelAccessRequest converts a domain AccessRequest to a model AccessRequest
func ToModelAccessRequest(d domain.AccessRequest) models.AccessRequest {
	return models.AccessRequest{
		RequestID:   d.RequestID,
		CompanyID:   d.CompanyID,
		UserID:      d.UserID,
		Status:      string(d.Status),
		Message:     d.Message,
		DecidedBy:   d.DecidedBy,
		DecidedAt:   d.DecidedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccessRequest converts a joined access request row to a domain AccessRequest
func ToDomainAccessRequest(m models.AccessRequestWithUser) domain.AccessRequest {
	return domain.AccessRequest{
		RequestID:   m.RequestID,
		CompanyID:   m.CompanyID,
		UserID:      m.UserID,
		UserEmail:   m.UserEmail,
		UserName:    m.UserName,
		Status:      domain.AccessRequestStatus(m.Status),
		Message:     m.Message,
		DecidedBy:   m.DecidedBy,
		DecidedAt:   utcPtr(m.DecidedAt),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccessRequestSlice converts joined access request rows to domain AccessRequests
func ToDomainAccessRequestSlice(ms []models.AccessRequestWithUser) []domain.AccessRequest {
	return mapSlice(ms, ToDomainAccessRequest)
}
