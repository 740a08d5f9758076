package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/SscSPs/property_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauthstate"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService  portssvc.AuthSvcFacade
	googleOAuth  portssvc.GoogleOAuthHandlerSvcFacade
	frontendURL  string
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService portssvc.AuthSvcFacade, googleOAuth portssvc.GoogleOAuthHandlerSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		googleOAuth:  googleOAuth,
		frontendURL:  cfg.FrontendBaseURL,
		secureCookie: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public authentication routes. Sign-up and
// password login are rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, logger *slog.Logger) {
	h := NewAuthHandler(services.Auth, services.GoogleOAuthHandler, cfg)

	auth := r.Group("/api/auth")
	limited := []gin.HandlerFunc{}
	if lim, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit); err != nil {
		logger.Warn("Invalid login rate limit, auth routes are not rate limited",
			slog.String("rate", cfg.LoginRateLimit),
			slog.String("error", err.Error()))
	} else {
		limited = append(limited, middleware.RateLimit(lim))
	}
	{
		auth.POST("/register-company", append(limited, h.RegisterCompany)...)
		auth.POST("/register", append(limited, h.Register)...)
		auth.POST("/login", append(limited, h.Login)...)
		auth.GET("/google/login", h.GoogleLogin)
		auth.GET("/google/callback", h.GoogleCallback)
	}
}

// registerMeRoute registers the authenticated profile route.
func registerMeRoute(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := &AuthHandler{authService: authService}
	rg.GET("/auth/me", h.Me)
}

// RegisterCompany godoc
// @Summary Register a company
// @Description Creates a company with a fresh access code and its admin user, and returns a token for the admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterCompanyRequest true "Company and admin details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/register-company [post]
func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req dto.RegisterCompanyRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authService.RegisterCompany(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register company")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Register godoc
// @Summary Request access to a company
// @Description Creates an unapproved user and a pending access request using the company's access code.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterUserRequest true "User details and access code"
// @Success 201 {object} dto.AccessRequestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or access code"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}
	accessRequest, err := h.authService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccessRequestResponse(accessRequest))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Account pending approval"
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Current user
// @Description Returns the authenticated user and their company.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	user, company, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.MeResponse{
		User:    dto.ToUserResponse(user),
		Company: dto.ToCompanyResponse(company, user.Role == domain.RoleAdmin),
	})
}

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Description Sets a state cookie and redirects to Google's consent page.
// @Tags oauth
// @Success 307
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.googleOAuth.GenerateStateString(ctx)
	if err != nil {
		respondError(c, err, "Failed to start Google sign-in")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/api/auth/google", "", h.secureCookie, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuth.GetGoogleLoginURL(ctx, state))
}

// GoogleCallback godoc
// @Summary Finish Google sign-in
// @Description Exchanges the authorization code, validates the ID token and redirects to the frontend with an access token.
// @Tags oauth
// @Param code query string true "Authorization code"
// @Param state query string true "State echoed from the login redirect"
// @Success 302
// @Failure 400 {object} dto.ErrorResponse "State mismatch or missing code"
// @Failure 401 {object} dto.ErrorResponse "Invalid Google token or unknown user"
// @Failure 403 {object} dto.ErrorResponse "Account pending approval"
// @Failure 502 {object} dto.ErrorResponse "Google profile unavailable"
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || c.Query("state") != expected {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/api/auth/google", "", h.secureCookie, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Authorization code is required"})
		return
	}

	token, err := h.googleOAuth.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Warn("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid or expired authorization code"})
		return
	}
	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Google did not return an ID token"})
		return
	}
	payload, err := h.googleOAuth.ValidateGoogleIDToken(ctx, idToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	info, err := resolveGoogleUser(ctx, h.googleOAuth, token, payload)
	if err != nil {
		if errors.Is(err, errGoogleSubjectMismatch) {
			logger.Warn("Google userinfo does not match ID token", slog.String("subject", payload.Subject))
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid Google ID token"})
			return
		}
		logger.Error("Failed to load Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Failed to load Google profile"})
		return
	}
	resp, err := h.authService.LoginWithGoogle(ctx, info)
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}
	c.Redirect(http.StatusFound, h.frontendURL+"/auth/callback#token="+url.QueryEscape(resp.Token))
}
