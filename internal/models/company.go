package models

import "time"

// Company is the persistence shape of the companies table.
type Company struct {
	CompanyID  string `db:"company_id" gorm:"column:company_id;primaryKey"`
	Name       string `db:"name" gorm:"column:name"`
	AccessCode string `db:"access_code" gorm:"column:access_code"`
	IsActive   bool   `db:"is_active" gorm:"column:is_active"`
	AuditFields
}

func (Company) TableName() string { return "companies" }

// User is the persistence shape of the users table.
type User struct {
	UserID       string     `db:"user_id" gorm:"column:user_id;primaryKey"`
	CompanyID    string     `db:"company_id" gorm:"column:company_id"`
	Email        string     `db:"email" gorm:"column:email"`
	Name         string     `db:"name" gorm:"column:name"`
	PasswordHash string     `db:"password_hash" gorm:"column:password_hash"`
	Role         string     `db:"role" gorm:"column:role"`
	IsVerified   bool       `db:"is_verified" gorm:"column:is_verified"`
	IsApproved   bool       `db:"is_approved" gorm:"column:is_approved"`
	LastLoginAt  *time.Time `db:"last_login_at" gorm:"column:last_login_at"`
	AuditFields
}

func (User) TableName() string { return "users" }

// AccessRequest is the persistence shape of the access_requests table.
type AccessRequest struct {
	RequestID string     `db:"request_id" gorm:"column:request_id;primaryKey"`
	CompanyID string     `db:"company_id" gorm:"column:company_id"`
	UserID    string     `db:"user_id" gorm:"column:user_id"`
	Status    string     `db:"status" gorm:"column:status"`
	Message   string     `db:"message" gorm:"column:message"`
	DecidedBy *string    `db:"decided_by" gorm:"column:decided_by"`
	DecidedAt *time.Time `db:"decided_at" gorm:"column:decided_at"`
	AuditFields
}

func (AccessRequest) TableName() string { return "access_requests" }

// AccessRequestWithUser is an access request joined with the requesting user.
type AccessRequestWithUser struct {
	AccessRequest
	UserEmail string `db:"user_email" gorm:"column:user_email"`
	UserName  string `db:"user_name" gorm:"column:user_name"`
}
