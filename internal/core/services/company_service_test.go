package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	companyRepo *MockCompanyRepository
	userRepo    *MockUserRepository
	requestRepo *MockAccessRequestRepository
	service     portssvc.CompanySvcFacade
	ctx         context.Context
	company     *domain.Company
	admin       *domain.User
}

func (s *CompanyServiceTestSuite) SetupTest() {
	s.companyRepo = new(MockCompanyRepository)
	s.userRepo = new(MockUserRepository)
	s.requestRepo = new(MockAccessRequestRepository)
	s.service = services.NewCompanyService(s.companyRepo, s.userRepo, s.requestRepo)
	s.ctx = context.Background()
	s.company = &domain.Company{CompanyID: uuid.NewString(), Name: "Acme Rentals", AccessCode: "ABCD1234", IsActive: true}
	s.admin = &domain.User{UserID: uuid.NewString(), CompanyID: s.company.CompanyID, Role: domain.RoleAdmin, IsApproved: true}
}

func (s *CompanyServiceTestSuite) TearDownTest() {
	s.companyRepo.AssertExpectations(s.T())
	s.userRepo.AssertExpectations(s.T())
	s.requestRepo.AssertExpectations(s.T())
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

func (s *CompanyServiceTestSuite) expectAdmin() {
	s.userRepo.On("FindUserByID", s.ctx, s.admin.UserID).Return(s.admin, nil).Once()
	s.companyRepo.On("FindCompanyByID", s.ctx, s.company.CompanyID).Return(s.company, nil).Once()
}

func (s *CompanyServiceTestSuite) TestAuthorizeUserAction_Success() {
	s.expectAdmin()

	companyID, err := s.service.AuthorizeUserAction(s.ctx, s.admin.UserID, domain.RoleMember)

	s.Require().NoError(err)
	s.Equal(s.company.CompanyID, companyID)
}

func (s *CompanyServiceTestSuite) TestAuthorizeUserAction_PendingApproval() {
	pending := &domain.User{UserID: uuid.NewString(), CompanyID: s.company.CompanyID, Role: domain.RoleMember}
	s.userRepo.On("FindUserByID", s.ctx, pending.UserID).Return(pending, nil).Once()

	_, err := s.service.AuthorizeUserAction(s.ctx, pending.UserID, domain.RoleReadOnly)

	s.ErrorIs(err, apperrors.ErrPendingApproval)
}

func (s *CompanyServiceTestSuite) TestAuthorizeUserAction_InsufficientRole() {
	reader := &domain.User{UserID: uuid.NewString(), CompanyID: s.company.CompanyID, Role: domain.RoleReadOnly, IsApproved: true}
	s.userRepo.On("FindUserByID", s.ctx, reader.UserID).Return(reader, nil).Once()

	_, err := s.service.AuthorizeUserAction(s.ctx, reader.UserID, domain.RoleMember)

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CompanyServiceTestSuite) TestAuthorizeUserAction_DisabledCompany() {
	s.company.IsActive = false
	s.expectAdmin()

	_, err := s.service.AuthorizeUserAction(s.ctx, s.admin.UserID, domain.RoleReadOnly)

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CompanyServiceTestSuite) TestAuthorizeUserAction_UnknownUser() {
	missing := uuid.NewString()
	s.userRepo.On("FindUserByID", s.ctx, missing).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.AuthorizeUserAction(s.ctx, missing, domain.RoleReadOnly)
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = s.service.AuthorizeUserAction(s.ctx, "not-a-uuid", domain.RoleReadOnly)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *CompanyServiceTestSuite) TestApproveAccessRequest() {
	applicant := &domain.User{UserID: uuid.NewString(), CompanyID: s.company.CompanyID, Role: domain.RoleMember}
	req := &domain.AccessRequest{
		RequestID: uuid.NewString(),
		CompanyID: s.company.CompanyID,
		UserID:    applicant.UserID,
		Status:    domain.AccessRequestPending,
	}
	s.expectAdmin()
	s.requestRepo.On("FindAccessRequestByID", s.ctx, req.RequestID).Return(req, nil).Once()
	s.userRepo.On("FindUserByID", s.ctx, applicant.UserID).Return(applicant, nil).Once()
	s.userRepo.On("UpdateUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == applicant.UserID && u.IsApproved && u.Role == domain.RoleReadOnly
	})).Return(nil).Once()
	s.requestRepo.On("UpdateAccessRequest", s.ctx, mock.MatchedBy(func(r domain.AccessRequest) bool {
		return r.Status == domain.AccessRequestApproved && r.DecidedBy != nil && *r.DecidedBy == s.admin.UserID
	})).Return(nil).Once()

	approved, err := s.service.ApproveAccessRequest(s.ctx, s.admin.UserID, req.RequestID, domain.RoleReadOnly)

	s.Require().NoError(err)
	s.Equal(domain.AccessRequestApproved, approved.Status)
	s.NotNil(approved.DecidedAt)
}

func (s *CompanyServiceTestSuite) TestApproveAccessRequest_AlreadyDecided() {
	req := &domain.AccessRequest{
		RequestID: uuid.NewString(),
		CompanyID: s.company.CompanyID,
		Status:    domain.AccessRequestRejected,
	}
	s.expectAdmin()
	s.requestRepo.On("FindAccessRequestByID", s.ctx, req.RequestID).Return(req, nil).Once()

	_, err := s.service.ApproveAccessRequest(s.ctx, s.admin.UserID, req.RequestID, "")

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *CompanyServiceTestSuite) TestApproveAccessRequest_OtherCompany() {
	req := &domain.AccessRequest{
		RequestID: uuid.NewString(),
		CompanyID: uuid.NewString(),
		Status:    domain.AccessRequestPending,
	}
	s.expectAdmin()
	s.requestRepo.On("FindAccessRequestByID", s.ctx, req.RequestID).Return(req, nil).Once()

	_, err := s.service.ApproveAccessRequest(s.ctx, s.admin.UserID, req.RequestID, domain.RoleMember)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CompanyServiceTestSuite) TestUpdateUserRole_Self() {
	s.expectAdmin()

	_, err := s.service.UpdateUserRole(s.ctx, s.admin.UserID, s.admin.UserID, domain.RoleMember)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CompanyServiceTestSuite) TestRegenerateAccessCode() {
	s.expectAdmin()
	s.companyRepo.On("FindCompanyByID", s.ctx, s.company.CompanyID).Return(&domain.Company{
		CompanyID:  s.company.CompanyID,
		AccessCode: "ABCD1234",
		IsActive:   true,
	}, nil).Once()
	s.companyRepo.On("UpdateCompany", s.ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.AccessCode != "" && c.AccessCode != "ABCD1234"
	})).Return(nil).Once()

	company, err := s.service.RegenerateAccessCode(s.ctx, s.admin.UserID)

	s.Require().NoError(err)
	s.NotEqual("ABCD1234", company.AccessCode)
}
