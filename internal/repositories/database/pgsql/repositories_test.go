package pgsql_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/core/services"
	"github.com/SscSPs/property_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/property_management_app/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// testDatabaseURLEnv names a disposable Postgres database for these tests.
const testDatabaseURLEnv = "PMA_TEST_PGSQL_URL"

// RepositoriesTestSuite runs the pgx repositories against a real Postgres
// migrated with the embedded schema. Each test seeds its own company.
type RepositoriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	pool     *pgxpool.Pool
	repos    portsrepo.RepositoryProvider
	now      time.Time
	company  domain.Company
	building domain.Building
	unit     domain.Unit
	tenant   domain.Tenant
}

func TestRepositoriesTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoriesTestSuite))
}

func (s *RepositoriesTestSuite) SetupSuite() {
	url := os.Getenv(testDatabaseURLEnv)
	if url == "" {
		s.T().Skipf("%s not set", testDatabaseURLEnv)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.ctx = context.Background()

	pool, err := database.NewPgxPool(s.ctx, url, logger)
	s.Require().NoError(err)
	s.pool = pool

	sqlDB := stdlib.OpenDBFromPool(pool)
	s.T().Cleanup(func() { _ = sqlDB.Close() })
	migrator, err := database.NewMigrator("postgres", sqlDB, logger)
	s.Require().NoError(err)
	s.Require().NoError(migrator.Up())

	s.repos = pgsql.NewRepositoryProvider(pool)
	s.now = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
}

func (s *RepositoriesTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *RepositoriesTestSuite) SetupTest() {
	s.company = domain.Company{CompanyID: uuid.NewString(), Name: "Acme", AccessCode: uuid.NewString()[:16], IsActive: true, AuditFields: s.audit()}
	s.Require().NoError(s.repos.CompanyRepo.SaveCompany(s.ctx, s.company))
	s.building = s.saveBuilding("Main")
	s.unit = s.saveUnit(s.building.BuildingID, "1A")
	s.tenant = s.saveTenant(&s.unit.UnitID, "Jane Roe")
}

// TearDownTest removes the seeded company. Units restrict building deletes,
// so tenants and units go first.
func (s *RepositoriesTestSuite) TearDownTest() {
	for _, stmt := range []string{
		`DELETE FROM punches WHERE employee_id IN (SELECT employee_id FROM employees WHERE company_id = $1)`,
		`DELETE FROM tenants WHERE company_id = $1`,
		`DELETE FROM units WHERE building_id IN (SELECT building_id FROM buildings WHERE company_id = $1)`,
		`DELETE FROM companies WHERE company_id = $1`,
	} {
		_, err := s.pool.Exec(s.ctx, stmt, s.company.CompanyID)
		s.Require().NoError(err)
	}
}

func (s *RepositoriesTestSuite) audit() domain.AuditFields {
	return domain.NewAuditFields("seed", s.now)
}

func (s *RepositoriesTestSuite) saveBuilding(name string) domain.Building {
	b := domain.Building{BuildingID: uuid.NewString(), CompanyID: s.company.CompanyID, Name: name, AuditFields: s.audit()}
	s.Require().NoError(s.repos.BuildingRepo.SaveBuilding(s.ctx, b))
	return b
}

func (s *RepositoriesTestSuite) saveUnit(buildingID, number string) domain.Unit {
	u := domain.Unit{UnitID: uuid.NewString(), BuildingID: buildingID, UnitNumber: number, AuditFields: s.audit()}
	s.Require().NoError(s.repos.UnitRepo.SaveUnit(s.ctx, u))
	return u
}

func (s *RepositoriesTestSuite) saveTenant(unitID *string, name string) domain.Tenant {
	t := domain.Tenant{
		TenantID:    uuid.NewString(),
		CompanyID:   s.company.CompanyID,
		UnitID:      unitID,
		Name:        name,
		Status:      domain.TenantActive,
		AuditFields: s.audit(),
	}
	s.Require().NoError(s.repos.TenantRepo.SaveTenant(s.ctx, t))
	return t
}

func (s *RepositoriesTestSuite) saveLease(tenantID string, start time.Time, end *time.Time, rent int64) domain.Lease {
	l := domain.Lease{
		LeaseID:     uuid.NewString(),
		TenantID:    tenantID,
		StartDate:   start,
		EndDate:     end,
		RentAmount:  decimal.NewFromInt(rent),
		AuditFields: s.audit(),
	}
	s.Require().NoError(s.repos.LeaseRepo.SaveLease(s.ctx, l))
	return l
}

func (s *RepositoriesTestSuite) saveTxn(buildingID string, category domain.TransactionCategory, amount int64, on time.Time) {
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, domain.Transaction{
		TransactionID:   uuid.NewString(),
		BuildingID:      buildingID,
		Category:        category,
		Amount:          decimal.NewFromInt(amount),
		TransactionDate: on,
		AuditFields:     s.audit(),
	}))
}

func (s *RepositoriesTestSuite) TestBuildingWithUnitsCannotBeDeleted() {
	s.ErrorIs(s.repos.BuildingRepo.DeleteBuilding(s.ctx, s.building.BuildingID), apperrors.ErrDuplicate)
	s.ErrorIs(s.repos.BuildingRepo.DeleteBuilding(s.ctx, uuid.NewString()), apperrors.ErrNotFound)
}

func (s *RepositoriesTestSuite) TestEmployeeWithPunchesCannotBeDeleted() {
	project := domain.Project{ProjectID: uuid.NewString(), CompanyID: s.company.CompanyID, Name: "Roof", Status: domain.ProjectActive, AuditFields: s.audit()}
	s.Require().NoError(s.repos.ProjectRepo.SaveProject(s.ctx, project))
	employee := domain.Employee{EmployeeID: uuid.NewString(), CompanyID: s.company.CompanyID, FirstName: "Ann", HourlyRate: decimal.NewFromInt(30), IsActive: true, AuditFields: s.audit()}
	s.Require().NoError(s.repos.EmployeeRepo.SaveEmployee(s.ctx, employee))
	s.Require().NoError(s.repos.PunchRepo.SavePunch(s.ctx, domain.Punch{
		PunchID:     uuid.NewString(),
		EmployeeID:  employee.EmployeeID,
		ProjectID:   project.ProjectID,
		WorkDate:    date(2024, 1, 2),
		Hours:       decimal.NewFromInt(8),
		HourlyRate:  employee.HourlyRate,
		AuditFields: s.audit(),
	}))

	count, err := s.repos.EmployeeRepo.CountPunches(s.ctx, employee.EmployeeID)
	s.Require().NoError(err)
	s.Equal(1, count)
	s.ErrorIs(s.repos.EmployeeRepo.DeleteEmployee(s.ctx, employee.EmployeeID), apperrors.ErrDuplicate)
}

func (s *RepositoriesTestSuite) TestProfitabilityInputs_MonthBoundaries() {
	lease := s.saveLease(s.tenant.TenantID, date(2024, 3, 31), datePtr(date(2024, 6, 30)), 1000)
	s.saveLease(s.tenant.TenantID, date(2024, 4, 1), nil, 50)
	s.saveLease(s.tenant.TenantID, date(2023, 1, 1), datePtr(date(2024, 1, 1)), 70)
	payment := domain.RentPayment{
		PaymentID:   uuid.NewString(),
		LeaseID:     lease.LeaseID,
		Year:        2024,
		Month:       3,
		Amount:      decimal.NewFromInt(1000),
		IsConfirmed: true,
		ConfirmedAt: &s.now,
		AuditFields: s.audit(),
	}
	s.Require().NoError(s.repos.RentPaymentRepo.SaveRentPayments(s.ctx, []domain.RentPayment{payment}))

	s.saveTxn(s.building.BuildingID, domain.CategoryExpense, 200, date(2024, 3, 31))
	s.saveTxn(s.building.BuildingID, domain.CategoryExpense, 10, date(2024, 1, 1))
	s.saveTxn(s.building.BuildingID, domain.CategoryRevenue, 999, date(2024, 4, 1))
	s.saveTxn(s.building.BuildingID, domain.CategoryRevenue, 888, date(2023, 12, 31))

	unassigned := s.saveTenant(nil, "Sam Moss")
	s.saveLease(unassigned.TenantID, date(2024, 1, 1), nil, 700)

	start, end := domain.YearMonth{Year: 2024, Month: 1}, domain.YearMonth{Year: 2024, Month: 3}
	ids := []string{s.building.BuildingID, uuid.NewString()}
	inputs, err := s.repos.ReportingRepo.GetProfitabilityInputs(s.ctx, ids, start.FirstDay(), end.LastDay())
	s.Require().NoError(err)
	s.Len(inputs.Buildings, 1)
	s.Len(inputs.Leases, 2)
	s.Len(inputs.ConfirmedPayments, 1)
	s.Len(inputs.Ledger, 2)

	report := services.ComputeProfitability(*inputs, start, end, false)
	s.True(decimal.NewFromInt(1070).Equal(report.Summary.LeaseRevenue))
	s.True(decimal.NewFromInt(210).Equal(report.Summary.Expenses))
	s.True(decimal.NewFromInt(860).Equal(report.Summary.NetCashflow))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}
