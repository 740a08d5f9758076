package handlers

import (
	"context"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testJWTIssuer = "pma-test"
)

// generateTestToken creates a signed JWT for userID.
func generateTestToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    testJWTIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetProfitabilityReport(ctx context.Context, userID string, buildingIDs []string, start, end domain.YearMonth, confirmedOnly bool) (*domain.ProfitabilityReport, error) {
	args := m.Called(ctx, userID, buildingIDs, start, end, confirmedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitabilityReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock BuildingService ---
type MockBuildingService struct {
	mock.Mock
}

func (m *MockBuildingService) CreateBuilding(ctx context.Context, userID string, req dto.CreateBuildingRequest) (*domain.Building, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockBuildingService) GetBuilding(ctx context.Context, userID, buildingID string) (*domain.Building, error) {
	args := m.Called(ctx, userID, buildingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockBuildingService) ListBuildings(ctx context.Context, userID string) ([]domain.Building, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Building), args.Error(1)
}

func (m *MockBuildingService) UpdateBuilding(ctx context.Context, userID, buildingID string, req dto.UpdateBuildingRequest) (*domain.Building, error) {
	args := m.Called(ctx, userID, buildingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockBuildingService) DeleteBuilding(ctx context.Context, userID, buildingID string) error {
	args := m.Called(ctx, userID, buildingID)
	return args.Error(0)
}

func (m *MockBuildingService) GetBuildingOverview(ctx context.Context, userID, buildingID string) (*domain.BuildingOverview, error) {
	args := m.Called(ctx, userID, buildingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BuildingOverview), args.Error(1)
}

var _ portssvc.BuildingSvcFacade = (*MockBuildingService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterCompany(ctx context.Context, req dto.RegisterCompanyRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.AccessRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessRequest), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) LoginWithGoogle(ctx context.Context, info domain.GoogleUserInfo) (*dto.AuthResponse, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*domain.User, *domain.Company, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	var company *domain.Company
	if args.Get(1) != nil {
		company = args.Get(1).(*domain.Company)
	}
	return user, company, args.Error(2)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock GoogleOAuthHandlerService ---
type MockGoogleOAuth struct {
	mock.Mock
}

func (m *MockGoogleOAuth) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuth) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

func (m *MockGoogleOAuth) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuth) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleUserInfo), args.Error(1)
}

func (m *MockGoogleOAuth) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuth)(nil)
