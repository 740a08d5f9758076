package dto

import (
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// RegisterCompanyRequest creates a company together with its first admin.
type RegisterCompanyRequest struct {
	CompanyName string `json:"companyName" binding:"required,max=200"`
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"required,max=200"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

// RegisterUserRequest asks to join an existing company by access code.
type RegisterUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required,max=200"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	AccessCode string `json:"accessCode" binding:"required"`
	Message    string `json:"message" binding:"max=1000"`
}

// LoginRequest carries email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by every successful sign-in.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID      string          `json:"userID"`
	CompanyID   string          `json:"companyID"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        domain.UserRole `json:"role"`
	IsVerified  bool            `json:"isVerified"`
	IsApproved  bool            `json:"isApproved"`
	LastLoginAt *time.Time      `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		CompanyID:   u.CompanyID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		IsVerified:  u.IsVerified,
		IsApproved:  u.IsApproved,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// ToListUserResponse converts users to DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	return mapList(users, ToUserResponse)
}

// CompanyResponse defines the data returned for a company.
// AccessCode is only filled for admins.
type CompanyResponse struct {
	CompanyID  string `json:"companyID"`
	Name       string `json:"name"`
	AccessCode string `json:"accessCode,omitempty"`
	IsActive   bool   `json:"isActive"`
	AuditResponse
}

// ToCompanyResponse converts a company; withCode controls whether the access code is exposed.
func ToCompanyResponse(c *domain.Company, withCode bool) CompanyResponse {
	resp := CompanyResponse{
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		IsActive:      c.IsActive,
		AuditResponse: toAuditResponse(c.AuditFields),
	}
	if withCode {
		resp.AccessCode = c.AccessCode
	}
	return resp
}

// MeResponse describes the caller and their company.
type MeResponse struct {
	User    UserResponse    `json:"user"`
	Company CompanyResponse `json:"company"`
}

// AccessRequestResponse defines the data returned for an access request.
type AccessRequestResponse struct {
	RequestID string                     `json:"requestID"`
	CompanyID string                     `json:"companyID"`
	UserID    string                     `json:"userID"`
	UserEmail string                     `json:"userEmail"`
	UserName  string                     `json:"userName"`
	Status    domain.AccessRequestStatus `json:"status"`
	Message   string                     `json:"message"`
	DecidedBy *string                    `json:"decidedBy,omitempty"`
	DecidedAt *time.Time                 `json:"decidedAt,omitempty"`
	CreatedAt time.Time                  `json:"createdAt"`
}

// ToAccessRequestResponse converts an access request to its DTO.
func ToAccessRequestResponse(r *domain.AccessRequest) AccessRequestResponse {
	return AccessRequestResponse{
		RequestID: r.RequestID,
		CompanyID: r.CompanyID,
		UserID:    r.UserID,
		UserEmail: r.UserEmail,
		UserName:  r.UserName,
		Status:    r.Status,
		Message:   r.Message,
		DecidedBy: r.DecidedBy,
		DecidedAt: r.DecidedAt,
		CreatedAt: r.CreatedAt,
	}
}

// ToListAccessRequestResponse converts access requests to DTOs.
func ToListAccessRequestResponse(rs []domain.AccessRequest) []AccessRequestResponse {
	return mapList(rs, ToAccessRequestResponse)
}

// ListAccessRequestsParams filters the access request listing.
type ListAccessRequestsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// ApproveAccessRequestRequest picks the role granted on approval.
type ApproveAccessRequestRequest struct {
	Role domain.UserRole `json:"role" binding:"omitempty,userrole"`
}

// UpdateUserRoleRequest changes a company member's role.
type UpdateUserRoleRequest struct {
	Role domain.UserRole `json:"role" binding:"required,userrole"`
}
