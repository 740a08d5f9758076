package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultMaxReportMonths bounds a report's month span when no limit is configured.
const DefaultMaxReportMonths = 240

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	buildingRepo  portsrepo.BuildingReader
	maxMonths     int
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	repo portsrepo.ReportingRepository,
	buildingRepo portsrepo.BuildingReader,
	maxMonths int,
	options ...ServiceOption,
) portssvc.ReportingService {
	if maxMonths <= 0 {
		maxMonths = DefaultMaxReportMonths
	}
	svc := &reportingService{
		reportingRepo: repo,
		buildingRepo:  buildingRepo,
		maxMonths:     maxMonths,
	}
	svc.apply(options)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) validateRange(start, end domain.YearMonth) error {
	if !start.Valid() {
		return validationf("invalid start month %s", start)
	}
	if !end.Valid() {
		return validationf("invalid end month %s", end)
	}
	if start.After(end) {
		return validationf("start month %s is after end month %s", start, end)
	}
	if n := domain.MonthsBetween(start, end); n > s.maxMonths {
		return validationf("report spans %d months, the limit is %d", n, s.maxMonths)
	}
	return nil
}

// GetProfitabilityReport aggregates lease rent and ledger transactions per building and month.
func (s *reportingService) GetProfitabilityReport(ctx context.Context, userID string, buildingIDs []string, start, end domain.YearMonth, confirmedOnly bool) (*domain.ProfitabilityReport, error) {
	defer metrics.TrackReport("profitability")(time.Now())

	if err := s.validateRange(start, end); err != nil {
		return nil, err
	}
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}

	owned, err := s.buildingRepo.ListBuildings(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list buildings for profitability report", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	selected, ignored := selectBuildings(owned, buildingIDs)

	inputs := &domain.ProfitabilityInputs{}
	if len(selected) > 0 {
		inputs, err = s.reportingRepo.GetProfitabilityInputs(ctx, selected, start.FirstDay(), end.LastDay())
		if err != nil {
			s.LogError(ctx, err, "Failed to load profitability inputs",
				slog.String("company_id", companyID),
				slog.Int("building_count", len(selected)))
			return nil, fmt.Errorf("failed to load profitability inputs: %w", err)
		}
	}

	report := ComputeProfitability(*inputs, start, end, confirmedOnly)
	report.IgnoredBuildingIDs = ignored

	s.LogInfo(ctx, "Profitability report generated",
		slog.String("company_id", companyID),
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("building_count", len(report.Buildings)),
		slog.Int("ignored_count", len(ignored)))
	return report, nil
}

// selectBuildings resolves requested IDs against the company's buildings.
// Empty requested selects every owned building. Requested IDs that are
// malformed or not owned are returned as ignored, once each, in request order.
func selectBuildings(owned []domain.Building, requested []string) (selected, ignored []string) {
	ownedIDs := make(map[string]struct{}, len(owned))
	for _, b := range owned {
		ownedIDs[b.BuildingID] = struct{}{}
	}
	if len(requested) == 0 {
		for _, b := range owned {
			selected = append(selected, b.BuildingID)
		}
		return selected, nil
	}

	seen := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, err := uuid.Parse(id); err != nil {
			ignored = append(ignored, id)
			continue
		}
		if _, ok := ownedIDs[id]; !ok {
			ignored = append(ignored, id)
			continue
		}
		selected = append(selected, id)
	}
	return selected, ignored
}

type confirmedKey struct {
	leaseID string
	period  domain.YearMonth
}

// ComputeProfitability folds raw rows into the report for [start, end].
// A lease contributes its full rent in every month it is active; with
// confirmedOnly it contributes only in months holding a confirmed payment.
// Ledger rows count in the month of their date. Buildings without activity
// are still reported with zero figures.
func ComputeProfitability(inputs domain.ProfitabilityInputs, start, end domain.YearMonth, confirmedOnly bool) *domain.ProfitabilityReport {
	months := domain.MonthRange(start, end)
	monthIndex := make(map[domain.YearMonth]int, len(months))
	for i, m := range months {
		monthIndex[m] = i
	}

	buildings := append([]domain.Building(nil), inputs.Buildings...)
	sort.SliceStable(buildings, func(i, j int) bool {
		if buildings[i].Name != buildings[j].Name {
			return buildings[i].Name < buildings[j].Name
		}
		return buildings[i].BuildingID < buildings[j].BuildingID
	})

	perBuilding := make(map[string][]domain.CashflowFigures, len(buildings))
	for _, b := range buildings {
		perBuilding[b.BuildingID] = make([]domain.CashflowFigures, len(months))
	}

	confirmed := make(map[confirmedKey]struct{}, len(inputs.ConfirmedPayments))
	for _, p := range inputs.ConfirmedPayments {
		confirmed[confirmedKey{p.LeaseID, domain.YearMonth{Year: p.Year, Month: p.Month}}] = struct{}{}
	}

	for _, lease := range inputs.Leases {
		figures, ok := perBuilding[lease.BuildingID]
		if !ok {
			continue
		}
		for i, m := range months {
			if !lease.ActiveIn(m) {
				continue
			}
			if confirmedOnly {
				if _, paid := confirmed[confirmedKey{lease.LeaseID, m}]; !paid {
					continue
				}
			}
			figures[i].LeaseRevenue = figures[i].LeaseRevenue.Add(lease.RentAmount)
		}
	}

	for _, row := range inputs.Ledger {
		figures, ok := perBuilding[row.BuildingID]
		if !ok {
			continue
		}
		i, ok := monthIndex[domain.YearMonthOf(row.TransactionDate.UTC())]
		if !ok {
			continue
		}
		switch row.Category {
		case domain.CategoryRevenue:
			figures[i].OtherRevenue = figures[i].OtherRevenue.Add(row.Amount)
		case domain.CategoryExpense:
			figures[i].Expenses = figures[i].Expenses.Add(row.Amount)
		}
	}

	report := &domain.ProfitabilityReport{
		Start:         start,
		End:           end,
		ConfirmedOnly: confirmedOnly,
		Buildings:     make([]domain.BuildingProfitability, 0, len(buildings)),
		Monthly:       make([]domain.MonthlyFigures, len(months)),
		Summary:       zeroFigures(),
	}
	for i, m := range months {
		report.Monthly[i] = domain.MonthlyFigures{Period: m, CashflowFigures: zeroFigures()}
	}

	for _, b := range buildings {
		figures := perBuilding[b.BuildingID]
		bp := domain.BuildingProfitability{
			BuildingID:   b.BuildingID,
			BuildingName: b.Name,
			Summary:      zeroFigures(),
			Months:       make([]domain.MonthlyFigures, len(months)),
		}
		for i, m := range months {
			f := finalize(figures[i])
			bp.Months[i] = domain.MonthlyFigures{Period: m, CashflowFigures: f}
			bp.Summary = bp.Summary.Add(f)
			report.Monthly[i].CashflowFigures = report.Monthly[i].CashflowFigures.Add(f)
		}
		report.Summary = report.Summary.Add(bp.Summary)
		report.Buildings = append(report.Buildings, bp)
	}
	return report
}

func zeroFigures() domain.CashflowFigures {
	return domain.CashflowFigures{
		LeaseRevenue: decimal.Zero,
		OtherRevenue: decimal.Zero,
		Revenue:      decimal.Zero,
		Expenses:     decimal.Zero,
		NetCashflow:  decimal.Zero,
	}
}

// finalize derives revenue and net cashflow from the accumulated parts.
func finalize(f domain.CashflowFigures) domain.CashflowFigures {
	f.Revenue = f.LeaseRevenue.Add(f.OtherRevenue)
	f.NetCashflow = f.Revenue.Sub(f.Expenses)
	return f
}
