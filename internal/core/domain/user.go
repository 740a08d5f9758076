package domain

import "time"

// UserRole defines what a user may do inside their company.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleMember   UserRole = "MEMBER"
	RoleReadOnly UserRole = "READONLY" // Users with read-only access to company data
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleReadOnly:
		return true
	}
	return false
}

// Satisfies reports whether a user holding r may perform an action requiring required.
func (r UserRole) Satisfies(required UserRole) bool {
	switch required {
	case RoleReadOnly:
		return r == RoleReadOnly || r == RoleMember || r == RoleAdmin
	case RoleMember:
		return r == RoleMember || r == RoleAdmin
	case RoleAdmin:
		return r == RoleAdmin
	default:
		return false
	}
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string     `json:"userID"` // Primary Key (UUID)
	CompanyID    string     `json:"companyID"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	IsVerified   bool       `json:"isVerified"`
	IsApproved   bool       `json:"isApproved"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
}

// GoogleUserInfo holds the identity claims taken from a validated Google ID token.
type GoogleUserInfo struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}
