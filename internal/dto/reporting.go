package dto

import (
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfitabilityParams defines query parameters for the profitability report.
// buildingId may repeat; none means every building of the company.
type ProfitabilityParams struct {
	BuildingIDs   []string `form:"buildingId"`
	Start         string   `form:"start" binding:"required,yearmonth"`
	End           string   `form:"end" binding:"required,yearmonth"`
	ConfirmedOnly bool     `form:"confirmedOnly"`
}

// CashflowResponse is the figure block repeated at every level of the report.
type CashflowResponse struct {
	LeaseRevenue decimal.Decimal `json:"leaseRevenue"`
	OtherRevenue decimal.Decimal `json:"otherRevenue"`
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetCashflow  decimal.Decimal `json:"netCashflow"`
}

// MonthlyCashflowResponse is one month of figures.
type MonthlyCashflowResponse struct {
	Period string `json:"period"`
	CashflowResponse
}

// BuildingProfitabilityResponse is one building's section of the report.
type BuildingProfitabilityResponse struct {
	BuildingID   string                    `json:"buildingID"`
	BuildingName string                    `json:"buildingName"`
	Summary      CashflowResponse          `json:"summary"`
	Months       []MonthlyCashflowResponse `json:"months"`
}

// ProfitabilityReportResponse is the body of GET /api/reports/profitability.
type ProfitabilityReportResponse struct {
	Start              string                          `json:"start"`
	End                string                          `json:"end"`
	ConfirmedOnly      bool                            `json:"confirmedOnly"`
	Buildings          []BuildingProfitabilityResponse `json:"buildings"`
	Monthly            []MonthlyCashflowResponse       `json:"monthly"`
	Summary            CashflowResponse                `json:"summary"`
	IgnoredBuildingIDs []string                        `json:"ignoredBuildingIDs"`
}

func toCashflowResponse(f domain.CashflowFigures) CashflowResponse {
	return CashflowResponse{
		LeaseRevenue: f.LeaseRevenue,
		OtherRevenue: f.OtherRevenue,
		Revenue:      f.Revenue,
		Expenses:     f.Expenses,
		NetCashflow:  f.NetCashflow,
	}
}

func toMonthlyResponses(ms []domain.MonthlyFigures) []MonthlyCashflowResponse {
	out := make([]MonthlyCashflowResponse, len(ms))
	for i, m := range ms {
		out[i] = MonthlyCashflowResponse{Period: m.Period.String(), CashflowResponse: toCashflowResponse(m.CashflowFigures)}
	}
	return out
}

// ToProfitabilityReportResponse converts a report to its DTO.
func ToProfitabilityReportResponse(r *domain.ProfitabilityReport) ProfitabilityReportResponse {
	buildings := make([]BuildingProfitabilityResponse, len(r.Buildings))
	for i, b := range r.Buildings {
		buildings[i] = BuildingProfitabilityResponse{
			BuildingID:   b.BuildingID,
			BuildingName: b.BuildingName,
			Summary:      toCashflowResponse(b.Summary),
			Months:       toMonthlyResponses(b.Months),
		}
	}
	ignored := r.IgnoredBuildingIDs
	if ignored == nil {
		ignored = []string{}
	}
	return ProfitabilityReportResponse{
		Start:              r.Start.String(),
		End:                r.End.String(),
		ConfirmedOnly:      r.ConfirmedOnly,
		Buildings:          buildings,
		Monthly:            toMonthlyResponses(r.Monthly),
		Summary:            toCashflowResponse(r.Summary),
		IgnoredBuildingIDs: ignored,
	}
}
