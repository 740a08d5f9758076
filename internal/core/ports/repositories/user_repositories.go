package repositories

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. Emails are stored lower-cased.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsersByCompany retrieves every user belonging to a company.
	ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
