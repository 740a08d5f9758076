package services

import (
	"context"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/SscSPs/property_management_app/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a JWT whose subject is the user ID.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// AuthSvcFacade covers sign-up and sign-in.
type AuthSvcFacade interface {
	// RegisterCompany creates a company with a fresh access code and its approved admin.
	RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*dto.AuthResponse, error)
	// RegisterUser creates an unapproved member and a pending access request.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.AccessRequest, error)
	// Login checks email/password and approval, then issues a token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	// LoginWithGoogle signs in an approved user whose email Google verified.
	LoginWithGoogle(ctx context.Context, info domain.GoogleUserInfo) (*dto.AuthResponse, error)
	// Me returns the caller and their company.
	Me(ctx context.Context, userID string) (*domain.User, *domain.Company, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
