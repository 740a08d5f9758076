package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BuildingHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	buildingService *MockBuildingService
	txnService      *MockTransactionService
	userID          string
	token           string
}

func (suite *BuildingHandlerTestSuite) SetupSuite() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	suite.Require().True(ok)
	suite.Require().NoError(dto.RegisterValidators(v))
}

func (suite *BuildingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.buildingService = new(MockBuildingService)
	suite.txnService = new(MockTransactionService)

	api := suite.router.Group("/api", middleware.AuthMiddleware(testJWTSecret, testJWTIssuer))
	registerBuildingRoutes(api, &portssvc.ServiceContainer{
		Building:    suite.buildingService,
		Transaction: suite.txnService,
	})

	suite.userID = uuid.NewString()
	token, err := generateTestToken(suite.userID)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *BuildingHandlerTestSuite) TearDownTest() {
	suite.buildingService.AssertExpectations(suite.T())
	suite.txnService.AssertExpectations(suite.T())
}

func TestBuildingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BuildingHandlerTestSuite))
}

func (suite *BuildingHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BuildingHandlerTestSuite) TestCreateBuilding_Success() {
	building := &domain.Building{
		BuildingID:    uuid.NewString(),
		Name:          "Main",
		CurrentValue:  decimal.NewFromInt(500000),
		RemainingDebt: decimal.NewFromInt(200000),
	}
	suite.buildingService.On("CreateBuilding", mock.AnythingOfType("*context.valueCtx"), suite.userID,
		mock.MatchedBy(func(req dto.CreateBuildingRequest) bool {
			return req.Name == "Main" && req.CurrentValue.Equal(decimal.NewFromInt(500000))
		})).Return(building, nil).Once()

	w := suite.do(http.MethodPost, "/api/buildings", map[string]any{
		"name":          "Main",
		"currentValue":  "500000",
		"remainingDebt": "200000",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.BuildingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(building.BuildingID, resp.BuildingID)
	suite.True(decimal.NewFromInt(300000).Equal(resp.Equity))
}

func (suite *BuildingHandlerTestSuite) TestCreateBuilding_MissingName() {
	w := suite.do(http.MethodPost, "/api/buildings", map[string]any{"address": "1 Main St"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.buildingService.AssertNumberOfCalls(suite.T(), "CreateBuilding", 0)
}

func (suite *BuildingHandlerTestSuite) TestErrorStatuses() {
	id := uuid.NewString()
	tests := []struct {
		name   string
		method string
		setup  func()
		status int
	}{
		{
			name:   "get missing building",
			method: http.MethodGet,
			setup: func() {
				suite.buildingService.On("GetBuilding", mock.Anything, suite.userID, id).
					Return(nil, apperrors.NewNotFoundError("building not found")).Once()
			},
			status: http.StatusNotFound,
		},
		{
			name:   "delete building with units",
			method: http.MethodDelete,
			setup: func() {
				suite.buildingService.On("DeleteBuilding", mock.Anything, suite.userID, id).
					Return(apperrors.NewConflictError("building still has units")).Once()
			},
			status: http.StatusConflict,
		},
		{
			name:   "read-only user deletes",
			method: http.MethodDelete,
			setup: func() {
				suite.buildingService.On("DeleteBuilding", mock.Anything, suite.userID, id).
					Return(apperrors.NewForbiddenError("role MEMBER required")).Once()
			},
			status: http.StatusForbidden,
		},
		{
			name:   "unexpected failure",
			method: http.MethodGet,
			setup: func() {
				suite.buildingService.On("GetBuilding", mock.Anything, suite.userID, id).
					Return(nil, errors.New("boom")).Once()
			},
			status: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			tt.setup()
			w := suite.do(tt.method, "/api/buildings/"+id, nil)
			suite.Equal(tt.status, w.Code)
		})
	}
}

func (suite *BuildingHandlerTestSuite) TestDeleteBuilding_NoContent() {
	id := uuid.NewString()
	suite.buildingService.On("DeleteBuilding", mock.AnythingOfType("*context.valueCtx"), suite.userID, id).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/buildings/"+id, nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *BuildingHandlerTestSuite) TestListBuildingTransactions_UsesPathBuilding() {
	id := uuid.NewString()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		BuildingID:    id,
		Category:      domain.CategoryExpense,
		Amount:        decimal.NewFromInt(200),
	}
	suite.txnService.On("ListTransactions", mock.AnythingOfType("*context.valueCtx"), suite.userID,
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.BuildingID == id && p.Limit == 50 && p.Category == "EXPENSE"
		})).Return([]domain.Transaction{txn}, "next-page", nil).Once()

	w := suite.do(http.MethodGet, "/api/buildings/"+id+"/transactions?category=EXPENSE&buildingId=ignored", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Equal("next-page", resp.NextToken)
}
