package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.AuthorizerSvc
	Clock      func() time.Time
}

// ServiceOption is a functional option shared by the company-scoped services.
type ServiceOption func(*BaseService)

// WithAuthorizer sets the authorizer used to resolve the caller's company.
func WithAuthorizer(authorizer portssvc.AuthorizerSvc) ServiceOption {
	return func(s *BaseService) {
		s.Authorizer = authorizer
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func (s *BaseService) apply(options []ServiceOption) {
	for _, option := range options {
		option(s)
	}
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks the caller's role and returns their company ID.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID string, requiredRole domain.UserRole) (string, error) {
	if s.Authorizer == nil {
		err := apperrors.NewAppError(http.StatusInternalServerError, "no authorizer configured", nil)
		s.LogError(ctx, err, "Service built without an authorizer", slog.String("user_id", userID))
		return "", err
	}
	companyID, err := s.Authorizer.AuthorizeUserAction(ctx, userID, requiredRole)
	if err != nil {
		s.LogDebug(ctx, "User not authorized",
			slog.String("user_id", userID),
			slog.String("required_role", string(requiredRole)),
			slog.String("error", err.Error()))
		return "", err
	}
	return companyID, nil
}

// requireUUID reports a malformed identifier as not found. Postgres rejects
// non-UUID values for uuid columns, so they never reach a query.
func requireUUID(id, entity string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewNotFoundError(entity + " not found")
	}
	return nil
}

func validationf(format string, args ...any) error {
	return apperrors.NewValidationFailedError(fmt.Sprintf(format, args...))
}
