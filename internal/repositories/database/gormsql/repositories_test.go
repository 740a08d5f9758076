package gormsql_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/core/services"
	"github.com/SscSPs/property_management_app/internal/repositories/database/gormsql"
	"github.com/SscSPs/property_management_app/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RepositoriesTestSuite runs the gorm repositories against an in-memory
// SQLite database migrated with the embedded schema.
type RepositoriesTestSuite struct {
	suite.Suite
	ctx      context.Context
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

func (s *RepositoriesTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gdb, err := database.NewGormDB("sqlite", ":memory:", logger)
	s.Require().NoError(err)
	sqlDB, err := gdb.DB()
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = sqlDB.Close() })

	migrator, err := database.NewMigrator("sqlite", sqlDB, logger)
	s.Require().NoError(err)
	s.Require().NoError(migrator.Up())

	s.ctx = context.Background()
	s.repos = gormsql.NewRepositoryProvider(gdb)
	s.now = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s.seed()
}

func (s *RepositoriesTestSuite) audit() domain.AuditFields {
	return domain.NewAuditFields("seed", s.now)
}

func (s *RepositoriesTestSuite) seed() {
	s.company = domain.Company{CompanyID: uuid.NewString(), Name: "Acme", AccessCode: "ACME0001", IsActive: true, AuditFields: s.audit()}
	s.Require().NoError(s.repos.CompanyRepo.SaveCompany(s.ctx, s.company))

	s.building = domain.Building{
		BuildingID:   uuid.NewString(),
		CompanyID:    s.company.CompanyID,
		Name:         "Main",
		CurrentValue: decimal.NewFromInt(500000),
		AuditFields:  s.audit(),
	}
	s.Require().NoError(s.repos.BuildingRepo.SaveBuilding(s.ctx, s.building))

	s.unit = domain.Unit{UnitID: uuid.NewString(), BuildingID: s.building.BuildingID, UnitNumber: "1A", AuditFields: s.audit()}
	s.Require().NoError(s.repos.UnitRepo.SaveUnit(s.ctx, s.unit))

	s.tenant = domain.Tenant{
		TenantID:    uuid.NewString(),
		CompanyID:   s.company.CompanyID,
		UnitID:      &s.unit.UnitID,
		Name:        "Jane Roe",
		Status:      domain.TenantActive,
		AuditFields: s.audit(),
	}
	s.Require().NoError(s.repos.TenantRepo.SaveTenant(s.ctx, s.tenant))
}

func (s *RepositoriesTestSuite) saveLease(start time.Time, end *time.Time, rent int64) domain.Lease {
	return s.saveLeaseFor(s.tenant.TenantID, start, end, rent)
}

func (s *RepositoriesTestSuite) saveLeaseFor(tenantID string, start time.Time, end *time.Time, rent int64) domain.Lease {
	lease := domain.Lease{
		LeaseID:     uuid.NewString(),
		TenantID:    tenantID,
		StartDate:   start,
		EndDate:     end,
		RentAmount:  decimal.NewFromInt(rent),
		AuditFields: s.audit(),
	}
	s.Require().NoError(s.repos.LeaseRepo.SaveLease(s.ctx, lease))
	return lease
}

func (s *RepositoriesTestSuite) payment(leaseID string, month int, confirmed bool) domain.RentPayment {
	p := domain.RentPayment{
		PaymentID:   uuid.NewString(),
		LeaseID:     leaseID,
		Year:        2024,
		Month:       month,
		Amount:      decimal.NewFromInt(1000),
		AuditFields: s.audit(),
	}
	if confirmed {
		p.IsConfirmed = true
		p.ConfirmedAt = &s.now
	}
	return p
}

func (s *RepositoriesTestSuite) TestCompanyLookups() {
	found, err := s.repos.CompanyRepo.FindCompanyByAccessCode(s.ctx, "ACME0001")
	s.Require().NoError(err)
	s.Equal(s.company.CompanyID, found.CompanyID)

	_, err = s.repos.CompanyRepo.FindCompanyByID(s.ctx, uuid.NewString())
	s.ErrorIs(err, apperrors.ErrNotFound)

	dup := s.company
	dup.CompanyID = uuid.NewString()
	s.ErrorIs(s.repos.CompanyRepo.SaveCompany(s.ctx, dup), apperrors.ErrDuplicate)
}

func (s *RepositoriesTestSuite) TestBuildingWithUnitsCannotBeDeleted() {
	count, err := s.repos.BuildingRepo.CountUnits(s.ctx, s.building.BuildingID)
	s.Require().NoError(err)
	s.Equal(1, count)

	s.ErrorIs(s.repos.BuildingRepo.DeleteBuilding(s.ctx, s.building.BuildingID), apperrors.ErrDuplicate)
	s.ErrorIs(s.repos.BuildingRepo.DeleteBuilding(s.ctx, uuid.NewString()), apperrors.ErrNotFound)
}

func (s *RepositoriesTestSuite) TestEmployeeWithPunchesCannotBeDeleted() {
	project := domain.Project{
		ProjectID:   uuid.NewString(),
		CompanyID:   s.company.CompanyID,
		Name:        "Roof",
		Status:      domain.ProjectActive,
		AuditFields: s.audit(),
	}
	s.Require().NoError(s.repos.ProjectRepo.SaveProject(s.ctx, project))
	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		CompanyID:   s.company.CompanyID,
		FirstName:   "Ann",
		HourlyRate:  decimal.NewFromInt(30),
		IsActive:    true,
		AuditFields: s.audit(),
	}
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
	_, err = s.repos.EmployeeRepo.FindEmployeeByID(s.ctx, employee.EmployeeID)
	s.NoError(err)
}

func (s *RepositoriesTestSuite) TestRentPayments_DuplicateMonthRollsBackBatch() {
	lease := s.saveLease(date(2024, 1, 1), nil, 1000)
	s.Require().NoError(s.repos.RentPaymentRepo.SaveRentPayments(s.ctx, []domain.RentPayment{s.payment(lease.LeaseID, 2, false)}))

	err := s.repos.RentPaymentRepo.SaveRentPayments(s.ctx, []domain.RentPayment{
		s.payment(lease.LeaseID, 1, false),
		s.payment(lease.LeaseID, 2, false),
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	payments, err := s.repos.RentPaymentRepo.ListRentPaymentsByLease(s.ctx, lease.LeaseID)
	s.Require().NoError(err)
	s.Require().Len(payments, 1)
	s.Equal(2, payments[0].Month)
}

func (s *RepositoriesTestSuite) TestDeleteLeaseRemovesPayments() {
	lease := s.saveLease(date(2024, 1, 1), nil, 1000)
	s.Require().NoError(s.repos.RentPaymentRepo.SaveRentPayments(s.ctx, []domain.RentPayment{
		s.payment(lease.LeaseID, 1, true),
		s.payment(lease.LeaseID, 2, false),
	}))

	s.Require().NoError(s.repos.LeaseRepo.DeleteLease(s.ctx, lease.LeaseID))

	payments, err := s.repos.RentPaymentRepo.ListRentPaymentsByLease(s.ctx, lease.LeaseID)
	s.Require().NoError(err)
	s.Empty(payments)
}

func (s *RepositoriesTestSuite) TestLeasesByBuildingFollowTenantUnit() {
	lease := s.saveLease(date(2024, 1, 1), datePtr(date(2024, 12, 31)), 1000)

	leases, err := s.repos.LeaseRepo.ListLeasesByBuilding(s.ctx, s.building.BuildingID)
	s.Require().NoError(err)
	s.Require().Len(leases, 1)
	s.Equal(lease.LeaseID, leases[0].LeaseID)
	s.True(date(2024, 12, 31).Equal(*leases[0].EndDate))

	moved := s.tenant
	moved.UnitID = nil
	moved.Touch("seed", s.now)
	s.Require().NoError(s.repos.TenantRepo.UpdateTenant(s.ctx, moved))

	leases, err = s.repos.LeaseRepo.ListLeasesByBuilding(s.ctx, s.building.BuildingID)
	s.Require().NoError(err)
	s.Empty(leases)
}

func (s *RepositoriesTestSuite) saveTxn(category domain.TransactionCategory, amount int64, on time.Time) domain.Transaction {
	return s.saveTxnFor(s.building.BuildingID, category, amount, on)
}

func (s *RepositoriesTestSuite) saveTxnFor(buildingID string, category domain.TransactionCategory, amount int64, on time.Time) domain.Transaction {
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BuildingID:      buildingID,
		Category:        category,
		Amount:          decimal.NewFromInt(amount),
		TransactionDate: on,
		AuditFields:     s.audit(),
	}
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, txn))
	return txn
}

func (s *RepositoriesTestSuite) TestListTransactions_KeysetPages() {
	newest := s.saveTxn(domain.CategoryExpense, 10, date(2024, 3, 3))
	middle := s.saveTxn(domain.CategoryRevenue, 20, date(2024, 3, 2))
	oldest := s.saveTxn(domain.CategoryExpense, 30, date(2024, 3, 1))

	first, err := s.repos.TransactionRepo.ListTransactions(s.ctx, s.company.CompanyID, domain.TransactionFilter{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(first, 2)
	s.Equal(newest.TransactionID, first[0].TransactionID)
	s.Equal(middle.TransactionID, first[1].TransactionID)

	last := first[1]
	rest, err := s.repos.TransactionRepo.ListTransactions(s.ctx, s.company.CompanyID, domain.TransactionFilter{
		Limit:          2,
		AfterDate:      &last.TransactionDate,
		AfterCreatedAt: &last.CreatedAt,
		AfterID:        last.TransactionID,
	})
	s.Require().NoError(err)
	s.Require().Len(rest, 1)
	s.Equal(oldest.TransactionID, rest[0].TransactionID)

	expense := domain.CategoryExpense
	expenses, err := s.repos.TransactionRepo.ListTransactions(s.ctx, s.company.CompanyID, domain.TransactionFilter{Category: &expense})
	s.Require().NoError(err)
	s.Len(expenses, 2)

	others, err := s.repos.TransactionRepo.ListTransactions(s.ctx, uuid.NewString(), domain.TransactionFilter{})
	s.Require().NoError(err)
	s.Empty(others)
}

func (s *RepositoriesTestSuite) TestProfitabilityInputs_FeedReport() {
	lease := s.saveLease(date(2024, 1, 1), nil, 1000)
	s.Require().NoError(s.repos.RentPaymentRepo.SaveRentPayments(s.ctx, []domain.RentPayment{
		s.payment(lease.LeaseID, 1, true),
		s.payment(lease.LeaseID, 2, false),
	}))
	s.saveTxn(domain.CategoryExpense, 200, date(2024, 3, 15))
	s.saveTxn(domain.CategoryRevenue, 999, date(2024, 4, 1))

	annex := domain.Building{
		BuildingID:  uuid.NewString(),
		CompanyID:   s.company.CompanyID,
		Name:        "Annex",
		AuditFields: s.audit(),
	}
	s.Require().NoError(s.repos.BuildingRepo.SaveBuilding(s.ctx, annex))
	annexUnit := domain.Unit{UnitID: uuid.NewString(), BuildingID: annex.BuildingID, UnitNumber: "2B", AuditFields: s.audit()}
	s.Require().NoError(s.repos.UnitRepo.SaveUnit(s.ctx, annexUnit))
	annexTenant := domain.Tenant{
		TenantID:    uuid.NewString(),
		CompanyID:   s.company.CompanyID,
		UnitID:      &annexUnit.UnitID,
		Name:        "John Doe",
		Status:      domain.TenantActive,
		AuditFields: s.audit(),
	}
	s.Require().NoError(s.repos.TenantRepo.SaveTenant(s.ctx, annexTenant))
	s.saveLeaseFor(annexTenant.TenantID, date(2024, 1, 1), nil, 500)
	s.saveTxnFor(annex.BuildingID, domain.CategoryExpense, 100, date(2024, 2, 10))

	// A lease whose tenant has no unit belongs to no building.
	unassigned := domain.Tenant{
		TenantID:    uuid.NewString(),
		CompanyID:   s.company.CompanyID,
		Name:        "Sam Moss",
		Status:      domain.TenantActive,
		AuditFields: s.audit(),
	}
	s.Require().NoError(s.repos.TenantRepo.SaveTenant(s.ctx, unassigned))
	s.saveLeaseFor(unassigned.TenantID, date(2024, 1, 1), nil, 700)

	start, end := domain.YearMonth{Year: 2024, Month: 1}, domain.YearMonth{Year: 2024, Month: 3}
	ids := []string{s.building.BuildingID, annex.BuildingID}
	inputs, err := s.repos.ReportingRepo.GetProfitabilityInputs(s.ctx, ids, start.FirstDay(), end.LastDay())
	s.Require().NoError(err)
	s.Len(inputs.Buildings, 2)
	s.Require().Len(inputs.Leases, 2)
	for _, l := range inputs.Leases {
		s.Contains(ids, l.BuildingID)
	}
	s.Len(inputs.ConfirmedPayments, 1)
	s.Len(inputs.Ledger, 2)

	report := services.ComputeProfitability(*inputs, start, end, false)
	s.Require().Len(report.Buildings, 2)
	s.Equal("Annex", report.Buildings[0].BuildingName)
	s.True(decimal.NewFromInt(1400).Equal(report.Buildings[0].Summary.NetCashflow))
	s.True(decimal.NewFromInt(2800).Equal(report.Buildings[1].Summary.NetCashflow))
	s.True(decimal.NewFromInt(4500).Equal(report.Summary.LeaseRevenue))
	s.True(decimal.NewFromInt(4200).Equal(report.Summary.NetCashflow))

	buildingNet := decimal.Zero
	for _, b := range report.Buildings {
		buildingNet = buildingNet.Add(b.Summary.NetCashflow)
	}
	s.True(buildingNet.Equal(report.Summary.NetCashflow))

	confirmed := services.ComputeProfitability(*inputs, start, end, true)
	s.Len(confirmed.Buildings, 2)
	s.True(decimal.NewFromInt(1000).Equal(confirmed.Summary.LeaseRevenue))
	s.True(confirmed.Summary.Revenue.LessThanOrEqual(report.Summary.Revenue))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}
