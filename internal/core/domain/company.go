package domain

import "time"

// Company is the tenant boundary: every building, project and employee belongs to one.
type Company struct {
	CompanyID  string `json:"companyID"`
	Name       string `json:"name"`
	AccessCode string `json:"accessCode"` // Shared with staff so they can request access
	IsActive   bool   `json:"isActive"`
	AuditFields
}

// AccessRequestStatus tracks the lifecycle of a request to join a company.
type AccessRequestStatus string

const (
	AccessRequestPending  AccessRequestStatus = "PENDING"
	AccessRequestApproved AccessRequestStatus = "APPROVED"
	AccessRequestRejected AccessRequestStatus = "REJECTED"
)

// AccessRequest is created when a user registers with a company access code.
type AccessRequest struct {
	RequestID string              `json:"requestID"`
	CompanyID string              `json:"companyID"`
	UserID    string              `json:"userID"`
	UserEmail string              `json:"userEmail"` // Denormalized on read
	UserName  string              `json:"userName"`  // Denormalized on read
	Status    AccessRequestStatus `json:"status"`
	Message   string              `json:"message"`
	DecidedBy *string             `json:"decidedBy,omitempty"`
	DecidedAt *time.Time          `json:"decidedAt,omitempty"`
	AuditFields
}
