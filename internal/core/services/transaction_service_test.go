package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/core/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	authorizer   *MockAuthorizer
	txnRepo      *MockTransactionRepository
	buildingRepo *MockBuildingRepository
	service      portssvc.TransactionSvcFacade
	ctx          context.Context
	userID       string
	companyID    string
	building     *domain.Building
	now          time.Time
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.authorizer = new(MockAuthorizer)
	s.txnRepo = new(MockTransactionRepository)
	s.buildingRepo = new(MockBuildingRepository)
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.service = services.NewTransactionService(s.txnRepo, s.buildingRepo,
		services.WithAuthorizer(s.authorizer),
		services.WithClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.companyID = uuid.NewString()
	s.building = &domain.Building{BuildingID: uuid.NewString(), CompanyID: s.companyID, Name: "Main"}
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.authorizer.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
	s.buildingRepo.AssertExpectations(s.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) txn(day int) domain.Transaction {
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		BuildingID:      s.building.BuildingID,
		Category:        domain.CategoryExpense,
		Amount:          decimal.NewFromInt(int64(day)),
		TransactionDate: date(2024, 4, day),
		AuditFields:     domain.NewAuditFields(s.userID, s.now),
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction() {
	s.authorizer.On("AuthorizeUserAction", s.ctx, s.userID, domain.RoleMember).Return(s.companyID, nil).Once()
	s.buildingRepo.On("FindBuildingByID", s.ctx, s.building.BuildingID).Return(s.building, nil).Once()
	s.txnRepo.On("SaveTransaction", s.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Category == domain.CategoryRevenue && t.TransactionDate.Equal(date(2024, 4, 2)) && t.CreatedAt.Equal(s.now)
	})).Return(nil).Once()

	txn, err := s.service.CreateTransaction(s.ctx, s.userID, dto.CreateTransactionRequest{
		BuildingID:      s.building.BuildingID,
		Category:        string(domain.CategoryRevenue),
		Amount:          decimal.NewFromInt(75),
		TransactionDate: "2024-04-02",
	})

	s.Require().NoError(err)
	s.Equal(s.building.BuildingID, txn.BuildingID)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	s.authorizer.On("AuthorizeUserAction", s.ctx, s.userID, domain.RoleMember).Return(s.companyID, nil).Once()
	s.buildingRepo.On("FindBuildingByID", s.ctx, s.building.BuildingID).Return(s.building, nil).Once()

	_, err := s.service.CreateTransaction(s.ctx, s.userID, dto.CreateTransactionRequest{
		BuildingID:      s.building.BuildingID,
		Category:        string(domain.CategoryExpense),
		Amount:          decimal.NewFromInt(-3),
		TransactionDate: "2024-04-02",
	})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestListTransactions_Paginates() {
	page := []domain.Transaction{s.txn(20), s.txn(10), s.txn(5)}
	s.authorizer.On("AuthorizeUserAction", s.ctx, s.userID, domain.RoleReadOnly).Return(s.companyID, nil).Twice()
	s.txnRepo.On("ListTransactions", s.ctx, s.companyID, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Limit == 3 && f.AfterDate == nil
	})).Return(page, nil).Once()

	txns, next, err := s.service.ListTransactions(s.ctx, s.userID, dto.ListTransactionsParams{Limit: 2})

	s.Require().NoError(err)
	s.Len(txns, 2)
	s.Require().NotEmpty(next)
	cursor, err := pagination.DecodeCursor(next)
	s.Require().NoError(err)
	s.Equal(page[1].TransactionID, cursor.ID)
	s.True(cursor.Date.Equal(page[1].TransactionDate))

	s.txnRepo.On("ListTransactions", s.ctx, s.companyID, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.AfterDate != nil && f.AfterID == page[1].TransactionID
	})).Return(page[2:], nil).Once()

	txns, next, err = s.service.ListTransactions(s.ctx, s.userID, dto.ListTransactionsParams{Limit: 2, NextToken: next})

	s.Require().NoError(err)
	s.Len(txns, 1)
	s.Empty(next)
}

func (s *TransactionServiceTestSuite) TestListTransactions_BadParams() {
	tests := []struct {
		name   string
		params dto.ListTransactionsParams
	}{
		{name: "unknown category", params: dto.ListTransactionsParams{Category: "INCOME"}},
		{name: "to before from", params: dto.ListTransactionsParams{From: "2024-05-01", To: "2024-04-01"}},
		{name: "garbage token", params: dto.ListTransactionsParams{NextToken: "%%%"}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.authorizer.On("AuthorizeUserAction", s.ctx, s.userID, domain.RoleReadOnly).Return(s.companyID, nil).Once()
			_, _, err := s.service.ListTransactions(s.ctx, s.userID, tt.params)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (s *TransactionServiceTestSuite) TestGetTransaction_OtherCompany() {
	txn := s.txn(1)
	foreign := &domain.Building{BuildingID: txn.BuildingID, CompanyID: uuid.NewString()}
	s.authorizer.On("AuthorizeUserAction", s.ctx, s.userID, domain.RoleReadOnly).Return(s.companyID, nil).Once()
	s.txnRepo.On("FindTransactionByID", s.ctx, txn.TransactionID).Return(&txn, nil).Once()
	s.buildingRepo.On("FindBuildingByID", s.ctx, txn.BuildingID).Return(foreign, nil).Once()

	_, err := s.service.GetTransaction(s.ctx, s.userID, txn.TransactionID)

	s.ErrorIs(err, apperrors.ErrNotFound)
}
