package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func month(year, m int) domain.YearMonth {
	return domain.YearMonth{Year: year, Month: m}
}

// One building, one open-ended 1000/month lease and a 200 expense in March.
func yearOfRentInputs() domain.ProfitabilityInputs {
	return domain.ProfitabilityInputs{
		Buildings: []domain.Building{{BuildingID: "b1", Name: "Main"}},
		Leases: []domain.LeaseRevenueRow{
			{LeaseID: "l1", BuildingID: "b1", StartDate: date(2024, 1, 1), RentAmount: decimal.NewFromInt(1000)},
		},
		Ledger: []domain.LedgerRow{
			{BuildingID: "b1", Category: domain.CategoryExpense, Amount: decimal.NewFromInt(200), TransactionDate: date(2024, 3, 15)},
		},
	}
}

func TestComputeProfitability_YearOfRent(t *testing.T) {
	report := services.ComputeProfitability(yearOfRentInputs(), month(2024, 1), month(2024, 12), false)

	require.Len(t, report.Buildings, 1)
	require.Len(t, report.Monthly, 12)
	assertDecimal(t, "12000", report.Summary.LeaseRevenue)
	assertDecimal(t, "0", report.Summary.OtherRevenue)
	assertDecimal(t, "12000", report.Summary.Revenue)
	assertDecimal(t, "200", report.Summary.Expenses)
	assertDecimal(t, "11800", report.Summary.NetCashflow)

	assert.Equal(t, month(2024, 3), report.Monthly[2].Period)
	assertDecimal(t, "800", report.Monthly[2].NetCashflow)
	assertDecimal(t, "1000", report.Monthly[3].NetCashflow)

	b := report.Buildings[0]
	assert.Equal(t, "Main", b.BuildingName)
	assertDecimal(t, "11800", b.Summary.NetCashflow)
	require.Len(t, b.Months, 12)
}

func TestComputeProfitability_ConfirmedOnly(t *testing.T) {
	inputs := yearOfRentInputs()
	inputs.ConfirmedPayments = []domain.ConfirmedPaymentRow{
		{LeaseID: "l1", Year: 2024, Month: 1},
		{LeaseID: "l1", Year: 2024, Month: 2},
	}

	report := services.ComputeProfitability(inputs, month(2024, 1), month(2024, 12), true)

	assert.True(t, report.ConfirmedOnly)
	assertDecimal(t, "2000", report.Summary.LeaseRevenue)
	assertDecimal(t, "1800", report.Summary.NetCashflow)
	assertDecimal(t, "0", report.Monthly[2].LeaseRevenue)
}

func TestComputeProfitability_RowsOutsideScope(t *testing.T) {
	inputs := yearOfRentInputs()
	inputs.Leases = append(inputs.Leases, domain.LeaseRevenueRow{
		LeaseID: "l2", BuildingID: "other", StartDate: date(2024, 1, 1), RentAmount: decimal.NewFromInt(5000),
	})
	inputs.Ledger = append(inputs.Ledger,
		domain.LedgerRow{BuildingID: "b1", Category: domain.CategoryRevenue, Amount: decimal.NewFromInt(75), TransactionDate: date(2024, 2, 29)},
		domain.LedgerRow{BuildingID: "b1", Category: domain.CategoryRevenue, Amount: decimal.NewFromInt(999), TransactionDate: date(2023, 12, 31)},
	)

	report := services.ComputeProfitability(inputs, month(2024, 1), month(2024, 3), false)

	assertDecimal(t, "3000", report.Summary.LeaseRevenue)
	assertDecimal(t, "75", report.Summary.OtherRevenue)
	assertDecimal(t, "3075", report.Summary.Revenue)
	assertDecimal(t, "2875", report.Summary.NetCashflow)
}

func TestComputeProfitability_IdleBuildingsSortedByName(t *testing.T) {
	inputs := domain.ProfitabilityInputs{
		Buildings: []domain.Building{{BuildingID: "b2", Name: "Zeta"}, {BuildingID: "b1", Name: "Alpha"}},
	}

	report := services.ComputeProfitability(inputs, month(2024, 5), month(2024, 6), false)

	require.Len(t, report.Buildings, 2)
	assert.Equal(t, "Alpha", report.Buildings[0].BuildingName)
	assert.Equal(t, "Zeta", report.Buildings[1].BuildingName)
	for _, b := range report.Buildings {
		assertDecimal(t, "0", b.Summary.NetCashflow)
		assert.Len(t, b.Months, 2)
	}
}

// --- Reporting service suite ---

type ReportingServiceTestSuite struct {
	suite.Suite
	authorizer    *MockAuthorizer
	reportingRepo *MockReportingRepository
	buildingRepo  *MockBuildingRepository
	service       portssvc.ReportingService
	ctx           context.Context
	userID        string
	companyID     string
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.authorizer = new(MockAuthorizer)
	s.reportingRepo = new(MockReportingRepository)
	s.buildingRepo = new(MockBuildingRepository)
	s.service = services.NewReportingService(s.reportingRepo, s.buildingRepo, 24, services.WithAuthorizer(s.authorizer))
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.companyID = uuid.NewString()
}

func (s *ReportingServiceTestSuite) TearDownTest() {
	s.authorizer.AssertExpectations(s.T())
	s.reportingRepo.AssertExpectations(s.T())
	s.buildingRepo.AssertExpectations(s.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) TestGetProfitabilityReport_IgnoresUnknownBuildings() {
	owned := uuid.NewString()
	foreign := uuid.NewString()
	start, end := month(2024, 1), month(2024, 3)

	s.authorizer.On("AuthorizeUserAction", s.ctx, s.userID, domain.RoleReadOnly).Return(s.companyID, nil).Once()
	s.buildingRepo.On("ListBuildings", s.ctx, s.companyID).Return([]domain.Building{{BuildingID: owned, CompanyID: s.companyID, Name: "Main"}}, nil).Once()
	s.reportingRepo.On("GetProfitabilityInputs", s.ctx, []string{owned}, start.FirstDay(), end.LastDay()).
		Return(&domain.ProfitabilityInputs{Buildings: []domain.Building{{BuildingID: owned, Name: "Main"}}}, nil).Once()

	report, err := s.service.GetProfitabilityReport(s.ctx, s.userID, []string{owned, "not-a-uuid", foreign, owned}, start, end, false)

	s.Require().NoError(err)
	s.Len(report.Buildings, 1)
	s.Equal([]string{"not-a-uuid", foreign}, report.IgnoredBuildingIDs)
	s.Len(report.Monthly, 3)
}

func (s *ReportingServiceTestSuite) TestGetProfitabilityReport_AllBuildingsIgnored() {
	s.authorizer.On("AuthorizeUserAction", s.ctx, s.userID, domain.RoleReadOnly).Return(s.companyID, nil).Once()
	s.buildingRepo.On("ListBuildings", s.ctx, s.companyID).Return([]domain.Building{}, nil).Once()

	report, err := s.service.GetProfitabilityReport(s.ctx, s.userID, []string{"x"}, month(2024, 1), month(2024, 1), false)

	s.Require().NoError(err)
	s.Empty(report.Buildings)
	s.Equal([]string{"x"}, report.IgnoredBuildingIDs)
	s.True(report.Summary.NetCashflow.IsZero())
	s.reportingRepo.AssertNotCalled(s.T(), "GetProfitabilityInputs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) TestGetProfitabilityReport_InvalidRange() {
	tests := []struct {
		name       string
		start, end domain.YearMonth
	}{
		{name: "start after end", start: month(2024, 5), end: month(2024, 4)},
		{name: "span over limit", start: month(2020, 1), end: month(2022, 1)},
		{name: "invalid month", start: month(2024, 0), end: month(2024, 1)},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.GetProfitabilityReport(s.ctx, s.userID, nil, tt.start, tt.end, false)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (s *ReportingServiceTestSuite) TestGetProfitabilityReport_NotApproved() {
	s.authorizer.On("AuthorizeUserAction", s.ctx, s.userID, domain.RoleReadOnly).Return("", apperrors.ErrPendingApproval).Once()

	report, err := s.service.GetProfitabilityReport(s.ctx, s.userID, nil, month(2024, 1), month(2024, 2), false)

	s.Nil(report)
	s.ErrorIs(err, apperrors.ErrPendingApproval)
}
