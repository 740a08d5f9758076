package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/core/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LeaseServiceTestSuite struct {
	suite.Suite
	authorizer   *MockAuthorizer
	leaseRepo    *MockLeaseRepository
	tenantRepo   *MockTenantRepository
	paymentRepo  *MockRentPaymentRepository
	leases       portssvc.LeaseSvcFacade
	payments     portssvc.RentPaymentSvcFacade
	ctx          context.Context
	userID       string
	companyID    string
	tenant       *domain.Tenant
	openEnded    domain.Lease
	existingRent decimal.Decimal
}

func (s *LeaseServiceTestSuite) SetupTest() {
	s.authorizer = new(MockAuthorizer)
	s.leaseRepo = new(MockLeaseRepository)
	s.tenantRepo = new(MockTenantRepository)
	s.paymentRepo = new(MockRentPaymentRepository)
	withAuth := services.WithAuthorizer(s.authorizer)
	s.leases = services.NewLeaseService(s.leaseRepo, s.tenantRepo, nil, nil, withAuth)
	s.payments = services.NewRentPaymentService(s.paymentRepo, s.leaseRepo, s.tenantRepo, withAuth)
	s.ctx = context.Background()
	s.userID = uuid.NewString()
	s.companyID = uuid.NewString()
	s.tenant = &domain.Tenant{TenantID: uuid.NewString(), CompanyID: s.companyID, Name: "Jane Roe"}
	s.existingRent = decimal.NewFromInt(1000)
	s.openEnded = domain.Lease{
		LeaseID:    uuid.NewString(),
		TenantID:   s.tenant.TenantID,
		StartDate:  date(2024, 1, 1),
		RentAmount: s.existingRent,
	}
}

func (s *LeaseServiceTestSuite) TearDownTest() {
	s.authorizer.AssertExpectations(s.T())
	s.leaseRepo.AssertExpectations(s.T())
	s.tenantRepo.AssertExpectations(s.T())
	s.paymentRepo.AssertExpectations(s.T())
}

func TestLeaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaseServiceTestSuite))
}

func (s *LeaseServiceTestSuite) expectMember() {
	s.authorizer.On("AuthorizeUserAction", s.ctx, s.userID, domain.RoleMember).Return(s.companyID, nil).Once()
	s.tenantRepo.On("FindTenantByID", s.ctx, s.tenant.TenantID).Return(s.tenant, nil).Once()
}

func (s *LeaseServiceTestSuite) TestCreateLease_Success() {
	s.expectMember()
	closed := s.openEnded
	closed.EndDate = datePtr(date(2024, 6, 30))
	s.leaseRepo.On("ListLeasesByTenant", s.ctx, s.tenant.TenantID).Return([]domain.Lease{closed}, nil).Once()
	s.leaseRepo.On("SaveLease", s.ctx, mock.MatchedBy(func(l domain.Lease) bool {
		return l.TenantID == s.tenant.TenantID && l.StartDate.Equal(date(2024, 7, 1)) && l.EndDate == nil
	})).Return(nil).Once()

	lease, err := s.leases.CreateLease(s.ctx, s.userID, dto.CreateLeaseRequest{
		TenantID:   s.tenant.TenantID,
		StartDate:  "2024-07-01",
		RentAmount: decimal.NewFromInt(1100),
	})

	s.Require().NoError(err)
	s.NotEmpty(lease.LeaseID)
	s.Equal(s.userID, lease.CreatedBy)
}

func (s *LeaseServiceTestSuite) TestCreateLease_OverlapConflict() {
	s.expectMember()
	s.leaseRepo.On("ListLeasesByTenant", s.ctx, s.tenant.TenantID).Return([]domain.Lease{s.openEnded}, nil).Once()

	end := "2025-06-30"
	_, err := s.leases.CreateLease(s.ctx, s.userID, dto.CreateLeaseRequest{
		TenantID:   s.tenant.TenantID,
		StartDate:  "2025-01-01",
		EndDate:    &end,
		RentAmount: decimal.NewFromInt(1100),
	})

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.leaseRepo.AssertNotCalled(s.T(), "SaveLease", mock.Anything, mock.Anything)
}

func (s *LeaseServiceTestSuite) TestCreateLease_Validation() {
	tests := []struct {
		name string
		req  dto.CreateLeaseRequest
	}{
		{name: "zero rent", req: dto.CreateLeaseRequest{StartDate: "2024-01-01"}},
		{name: "end before start", req: dto.CreateLeaseRequest{StartDate: "2024-05-01", EndDate: strPtr("2024-04-30"), RentAmount: decimal.NewFromInt(10)}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.expectMember()
			tt.req.TenantID = s.tenant.TenantID
			_, err := s.leases.CreateLease(s.ctx, s.userID, tt.req)
			s.ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (s *LeaseServiceTestSuite) TestCreateLease_ForeignTenant() {
	foreign := &domain.Tenant{TenantID: uuid.NewString(), CompanyID: uuid.NewString()}
	s.authorizer.On("AuthorizeUserAction", s.ctx, s.userID, domain.RoleMember).Return(s.companyID, nil).Once()
	s.tenantRepo.On("FindTenantByID", s.ctx, foreign.TenantID).Return(foreign, nil).Once()

	_, err := s.leases.CreateLease(s.ctx, s.userID, dto.CreateLeaseRequest{
		TenantID:   foreign.TenantID,
		StartDate:  "2024-01-01",
		RentAmount: decimal.NewFromInt(10),
	})

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LeaseServiceTestSuite) TestGenerateRentSchedule_SkipsExistingMonths() {
	lease := s.openEnded
	lease.StartDate = date(2024, 1, 15)
	lease.EndDate = datePtr(date(2024, 4, 10))
	s.expectMember()
	s.leaseRepo.On("FindLeaseByID", s.ctx, lease.LeaseID).Return(&lease, nil).Once()
	s.paymentRepo.On("ListRentPaymentsByLease", s.ctx, lease.LeaseID).Return([]domain.RentPayment{
		{LeaseID: lease.LeaseID, Year: 2024, Month: 2, Amount: s.existingRent},
	}, nil).Once()
	s.paymentRepo.On("SaveRentPayments", s.ctx, mock.MatchedBy(func(ps []domain.RentPayment) bool {
		return len(ps) == 3 && ps[0].Month == 1 && ps[1].Month == 3 && ps[2].Month == 4
	})).Return(nil).Once()

	created, err := s.payments.GenerateRentSchedule(s.ctx, s.userID, lease.LeaseID, nil)

	s.Require().NoError(err)
	s.Len(created, 3)
	for _, p := range created {
		s.True(s.existingRent.Equal(p.Amount))
		s.False(p.IsConfirmed)
	}
}

func (s *LeaseServiceTestSuite) TestGenerateRentSchedule_OpenEndedNeedsThrough() {
	s.expectMember()
	s.leaseRepo.On("FindLeaseByID", s.ctx, s.openEnded.LeaseID).Return(&s.openEnded, nil).Once()

	_, err := s.payments.GenerateRentSchedule(s.ctx, s.userID, s.openEnded.LeaseID, nil)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LeaseServiceTestSuite) TestCreateRentPayment_OutsideLease() {
	s.expectMember()
	s.leaseRepo.On("FindLeaseByID", s.ctx, s.openEnded.LeaseID).Return(&s.openEnded, nil).Once()

	_, err := s.payments.CreateRentPayment(s.ctx, s.userID, s.openEnded.LeaseID, dto.CreateRentPaymentRequest{Period: "2023-12"})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LeaseServiceTestSuite) TestCreateRentPayment_Confirmed() {
	s.expectMember()
	s.leaseRepo.On("FindLeaseByID", s.ctx, s.openEnded.LeaseID).Return(&s.openEnded, nil).Once()
	s.paymentRepo.On("SaveRentPayments", s.ctx, mock.MatchedBy(func(ps []domain.RentPayment) bool {
		return len(ps) == 1 && ps[0].IsConfirmed && ps[0].ConfirmedBy != nil
	})).Return(nil).Once()

	payment, err := s.payments.CreateRentPayment(s.ctx, s.userID, s.openEnded.LeaseID, dto.CreateRentPaymentRequest{Period: "2024-03", Confirmed: true})

	s.Require().NoError(err)
	s.Equal(domain.YearMonth{Year: 2024, Month: 3}, payment.Period())
	s.True(s.existingRent.Equal(payment.Amount))
}

func strPtr(s string) *string {
	return &s
}
