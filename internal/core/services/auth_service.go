package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/platform/config"
	"github.com/SscSPs/property_management_app/internal/platform/metrics"
	"github.com/SscSPs/property_management_app/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for signing access tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	accessToken, expiresAt, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiresAt, nil
}

// --- GoogleOAuthHandlerSvcFacade Implementation ---

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
				"openid",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthHandlerService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo uses the access token to get user information from Google.
func (s *googleOAuthHandlerService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get("https://openidconnect.googleapis.com/v1/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api returned non-200 status for userinfo: %s", resp.Status)
	}

	var userInfo domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from google: %w", err)
	}
	return &userInfo, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}

// --- AuthSvcFacade Implementation ---

type authService struct {
	BaseService
	companyRepo       portsrepo.CompanyRepositoryFacade
	userRepo          portsrepo.UserRepositoryFacade
	accessRequestRepo portsrepo.AccessRequestRepositoryFacade
	tokens            portssvc.TokenSvcFacade
}

// NewAuthService creates the sign-up and sign-in service.
func NewAuthService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	accessRequestRepo portsrepo.AccessRequestRepositoryFacade,
	tokens portssvc.TokenSvcFacade,
	options ...ServiceOption,
) portssvc.AuthSvcFacade {
	s := &authService{
		companyRepo:       companyRepo,
		userRepo:          userRepo,
		accessRequestRepo: accessRequestRepo,
		tokens:            tokens,
	}
	s.apply(options)
	return s
}

// ensureEmailFree returns a conflict when the email is already registered.
func (s *authService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return apperrors.NewConflictError("email already registered")
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		s.LogError(ctx, err, "Failed to look up email")
		return err
	}
}

func (s *authService) issueToken(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to issue token", err)
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}

func (s *authService) RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*dto.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to register", err)
	}
	code, err := utils.GenerateAccessCode()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access code")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to register", err)
	}

	now := s.Now()
	userID := uuid.NewString()
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        req.CompanyName,
		AccessCode:  code,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	user := domain.User{
		UserID:       userID,
		CompanyID:    company.CompanyID,
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsApproved:   true,
		LastLoginAt:  &now,
		AuditFields:  domain.NewAuditFields(userID, now),
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("company_name", req.CompanyName))
		return nil, err
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save company admin", slog.String("company_id", company.CompanyID))
		return nil, err
	}
	s.LogInfo(ctx, "Company registered",
		slog.String("company_id", company.CompanyID),
		slog.String("user_id", user.UserID))
	metrics.RecordAuthAttempt("register_company", "success")
	return s.issueToken(ctx, &user)
}

func (s *authService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.AccessRequest, error) {
	company, err := s.companyRepo.FindCompanyByAccessCode(ctx, req.AccessCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError("invalid access code")
		}
		s.LogError(ctx, err, "Failed to look up access code")
		return nil, err
	}
	if !company.IsActive {
		return nil, apperrors.NewValidationFailedError("invalid access code")
	}
	email := utils.NormalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to register", err)
	}

	now := s.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		CompanyID:    company.CompanyID,
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         domain.RoleMember,
	}
	user.AuditFields = domain.NewAuditFields(user.UserID, now)
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("company_id", company.CompanyID))
		return nil, err
	}

	request := domain.AccessRequest{
		RequestID:   uuid.NewString(),
		CompanyID:   company.CompanyID,
		UserID:      user.UserID,
		UserEmail:   user.Email,
		UserName:    user.Name,
		Status:      domain.AccessRequestPending,
		Message:     req.Message,
		AuditFields: domain.NewAuditFields(user.UserID, now),
	}
	if err := s.accessRequestRepo.SaveAccessRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save access request", slog.String("user_id", user.UserID))
		return nil, err
	}
	s.LogInfo(ctx, "Access requested",
		slog.String("company_id", company.CompanyID),
		slog.String("request_id", request.RequestID))
	metrics.RecordAuthAttempt("register", "success")
	return &request, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.RecordAuthAttempt("password", "invalid")
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "invalid email or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		metrics.RecordAuthAttempt("password", "invalid")
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "invalid email or password", apperrors.ErrUnauthorized)
	}
	if !user.IsApproved {
		metrics.RecordAuthAttempt("password", "pending")
		return nil, apperrors.ErrPendingApproval
	}
	return s.completeLogin(ctx, user, "password")
}

func (s *authService) LoginWithGoogle(ctx context.Context, info domain.GoogleUserInfo) (*dto.AuthResponse, error) {
	if !info.EmailVerified || info.Email == "" {
		metrics.RecordAuthAttempt("google", "invalid")
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "google account email is not verified", apperrors.ErrUnauthorized)
	}
	user, err := s.userRepo.FindUserByEmail(ctx, utils.NormalizeEmail(info.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.RecordAuthAttempt("google", "invalid")
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "no account registered for this email", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for google login")
		return nil, err
	}
	if !user.IsApproved {
		metrics.RecordAuthAttempt("google", "pending")
		return nil, apperrors.ErrPendingApproval
	}
	user.IsVerified = true
	return s.completeLogin(ctx, user, "google")
}

// completeLogin stamps the login time and issues a token.
func (s *authService) completeLogin(ctx context.Context, user *domain.User, method string) (*dto.AuthResponse, error) {
	now := s.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to record login", slog.String("user_id", user.UserID))
		return nil, err
	}
	resp, err := s.issueToken(ctx, user)
	if err != nil {
		metrics.RecordAuthAttempt(method, "error")
		return nil, err
	}
	metrics.RecordAuthAttempt(method, "success")
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID), slog.String("method", method))
	return resp, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*domain.User, *domain.Company, error) {
	if _, err := uuidOrUnauthorized(userID); err != nil {
		return nil, nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewAppError(http.StatusUnauthorized, "unknown user", apperrors.ErrUnauthorized)
		}
		return nil, nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, user.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load company", slog.String("company_id", user.CompanyID))
		return nil, nil, err
	}
	return user, company, nil
}
