package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock Authorizer ---
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeUserAction(ctx context.Context, userID string, requiredRole domain.UserRole) (string, error) {
	args := m.Called(ctx, userID, requiredRole)
	return args.String(0), args.Error(1)
}

var _ portssvc.AuthorizerSvc = (*MockAuthorizer)(nil)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	args := m.Called(ctx, companyID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByAccessCode(ctx context.Context, accessCode string) (*domain.Company, error) {
	args := m.Called(ctx, accessCode)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

// --- Mock AccessRequestRepository ---
type MockAccessRequestRepository struct {
	mock.Mock
}

func (m *MockAccessRequestRepository) FindAccessRequestByID(ctx context.Context, requestID string) (*domain.AccessRequest, error) {
	args := m.Called(ctx, requestID)
	var req *domain.AccessRequest
	if args.Get(0) != nil {
		req = args.Get(0).(*domain.AccessRequest)
	}
	return req, args.Error(1)
}

func (m *MockAccessRequestRepository) ListAccessRequests(ctx context.Context, companyID string, status *domain.AccessRequestStatus) ([]domain.AccessRequest, error) {
	args := m.Called(ctx, companyID, status)
	var reqs []domain.AccessRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]domain.AccessRequest)
	}
	return reqs, args.Error(1)
}

func (m *MockAccessRequestRepository) SaveAccessRequest(ctx context.Context, req domain.AccessRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAccessRequestRepository) UpdateAccessRequest(ctx context.Context, req domain.AccessRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var _ portsrepo.AccessRequestRepositoryFacade = (*MockAccessRequestRepository)(nil)

// --- Mock BuildingRepository ---
type MockBuildingRepository struct {
	mock.Mock
}

func (m *MockBuildingRepository) FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error) {
	args := m.Called(ctx, buildingID)
	var b *domain.Building
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Building)
	}
	return b, args.Error(1)
}

func (m *MockBuildingRepository) ListBuildings(ctx context.Context, companyID string) ([]domain.Building, error) {
	args := m.Called(ctx, companyID)
	var buildings []domain.Building
	if args.Get(0) != nil {
		buildings = args.Get(0).([]domain.Building)
	}
	return buildings, args.Error(1)
}

func (m *MockBuildingRepository) CountUnits(ctx context.Context, buildingID string) (int, error) {
	args := m.Called(ctx, buildingID)
	return args.Int(0), args.Error(1)
}

func (m *MockBuildingRepository) SaveBuilding(ctx context.Context, building domain.Building) error {
	args := m.Called(ctx, building)
	return args.Error(0)
}

func (m *MockBuildingRepository) UpdateBuilding(ctx context.Context, building domain.Building) error {
	args := m.Called(ctx, building)
	return args.Error(0)
}

func (m *MockBuildingRepository) DeleteBuilding(ctx context.Context, buildingID string) error {
	args := m.Called(ctx, buildingID)
	return args.Error(0)
}

var _ portsrepo.BuildingRepositoryFacade = (*MockBuildingRepository)(nil)

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	var t *domain.Tenant
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.Tenant)
	}
	return t, args.Error(1)
}

func (m *MockTenantRepository) ListTenants(ctx context.Context, companyID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, companyID)
	var tenants []domain.Tenant
	if args.Get(0) != nil {
		tenants = args.Get(0).([]domain.Tenant)
	}
	return tenants, args.Error(1)
}

func (m *MockTenantRepository) ListTenantsByUnit(ctx context.Context, unitID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, unitID)
	var tenants []domain.Tenant
	if args.Get(0) != nil {
		tenants = args.Get(0).([]domain.Tenant)
	}
	return tenants, args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) DeleteTenant(ctx context.Context, tenantID string) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

var _ portsrepo.TenantRepositoryFacade = (*MockTenantRepository)(nil)

// --- Mock LeaseRepository ---
type MockLeaseRepository struct {
	mock.Mock
}

func (m *MockLeaseRepository) FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	args := m.Called(ctx, leaseID)
	var l *domain.Lease
	if args.Get(0) != nil {
		l = args.Get(0).(*domain.Lease)
	}
	return l, args.Error(1)
}

func (m *MockLeaseRepository) ListLeasesByTenant(ctx context.Context, tenantID string) ([]domain.Lease, error) {
	args := m.Called(ctx, tenantID)
	var leases []domain.Lease
	if args.Get(0) != nil {
		leases = args.Get(0).([]domain.Lease)
	}
	return leases, args.Error(1)
}

func (m *MockLeaseRepository) ListLeasesByBuilding(ctx context.Context, buildingID string) ([]domain.Lease, error) {
	args := m.Called(ctx, buildingID)
	var leases []domain.Lease
	if args.Get(0) != nil {
		leases = args.Get(0).([]domain.Lease)
	}
	return leases, args.Error(1)
}

func (m *MockLeaseRepository) SaveLease(ctx context.Context, lease domain.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}

func (m *MockLeaseRepository) UpdateLease(ctx context.Context, lease domain.Lease) error {
	args := m.Called(ctx, lease)
	return args.Error(0)
}

func (m *MockLeaseRepository) DeleteLease(ctx context.Context, leaseID string) error {
	args := m.Called(ctx, leaseID)
	return args.Error(0)
}

var _ portsrepo.LeaseRepositoryFacade = (*MockLeaseRepository)(nil)

// --- Mock RentPaymentRepository ---
type MockRentPaymentRepository struct {
	mock.Mock
}

func (m *MockRentPaymentRepository) FindRentPaymentByID(ctx context.Context, paymentID string) (*domain.RentPayment, error) {
	args := m.Called(ctx, paymentID)
	var p *domain.RentPayment
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.RentPayment)
	}
	return p, args.Error(1)
}

func (m *MockRentPaymentRepository) ListRentPaymentsByLease(ctx context.Context, leaseID string) ([]domain.RentPayment, error) {
	args := m.Called(ctx, leaseID)
	var payments []domain.RentPayment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.RentPayment)
	}
	return payments, args.Error(1)
}

func (m *MockRentPaymentRepository) SaveRentPayments(ctx context.Context, payments []domain.RentPayment) error {
	args := m.Called(ctx, payments)
	return args.Error(0)
}

func (m *MockRentPaymentRepository) UpdateRentPayment(ctx context.Context, payment domain.RentPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockRentPaymentRepository) DeleteRentPayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

var _ portsrepo.RentPaymentRepositoryFacade = (*MockRentPaymentRepository)(nil)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, companyID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, companyID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetProfitabilityInputs(ctx context.Context, buildingIDs []string, from, to time.Time) (*domain.ProfitabilityInputs, error) {
	args := m.Called(ctx, buildingIDs, from, to)
	var inputs *domain.ProfitabilityInputs
	if args.Get(0) != nil {
		inputs = args.Get(0).(*domain.ProfitabilityInputs)
	}
	return inputs, args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var e *domain.Employee
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Employee)
	}
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, companyID string) ([]domain.Employee, error) {
	args := m.Called(ctx, companyID)
	var es []domain.Employee
	if args.Get(0) != nil {
		es = args.Get(0).([]domain.Employee)
	}
	return es, args.Error(1)
}

func (m *MockEmployeeRepository) CountPunches(ctx context.Context, employeeID string) (int, error) {
	args := m.Called(ctx, employeeID)
	return args.Int(0), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

var _ portsrepo.EmployeeRepositoryFacade = (*MockEmployeeRepository)(nil)
