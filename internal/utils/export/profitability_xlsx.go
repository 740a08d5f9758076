// Package export renders reports as spreadsheet files.
package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the MIME type of the workbooks written here.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	summarySheet   = "Summary"
	buildingsSheet = "Buildings"
)

var figureHeaders = []any{"Lease revenue", "Other revenue", "Revenue", "Expenses", "Net cashflow"}

// WriteProfitabilityXLSX writes r as a workbook with two sheets: Summary holds
// the grand total and the company-wide month series, Buildings holds one row
// per building and month followed by each building's total.
func WriteProfitabilityXLSX(w io.Writer, r *domain.ProfitabilityReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(buildingsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	summary := &sheetWriter{f: f, sheet: summarySheet, bold: bold}
	summary.header(append([]any{"Period"}, figureHeaders...)...)
	for _, m := range r.Monthly {
		summary.row(false, m.Period.String(), m.CashflowFigures)
	}
	summary.row(true, fmt.Sprintf("Total %s to %s", r.Start, r.End), r.Summary)
	if len(r.IgnoredBuildingIDs) > 0 {
		summary.blank()
		summary.header("Ignored building IDs")
		for _, id := range r.IgnoredBuildingIDs {
			summary.cells(false, id)
		}
	}

	buildings := &sheetWriter{f: f, sheet: buildingsSheet, bold: bold}
	buildings.header(append([]any{"Building", "Period"}, figureHeaders...)...)
	for _, b := range r.Buildings {
		for _, m := range b.Months {
			buildings.row(false, b.BuildingName, m.Period.String(), m.CashflowFigures)
		}
		buildings.row(true, b.BuildingName, "Total", b.Summary)
	}

	if summary.err != nil {
		return summary.err
	}
	if buildings.err != nil {
		return buildings.err
	}
	return f.Write(w)
}

// sheetWriter appends rows to one sheet and keeps the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	bold  int
	next  int
	err   error
}

func (s *sheetWriter) header(values ...any) {
	s.cells(true, values...)
}

func (s *sheetWriter) blank() {
	s.next++
}

func (s *sheetWriter) row(bold bool, label any, rest ...any) {
	values := []any{label}
	for _, v := range rest {
		if figs, ok := v.(domain.CashflowFigures); ok {
			values = append(values, money(figs.LeaseRevenue), money(figs.OtherRevenue),
				money(figs.Revenue), money(figs.Expenses), money(figs.NetCashflow))
			continue
		}
		values = append(values, v)
	}
	s.cells(bold, values...)
}

func (s *sheetWriter) cells(bold bool, values ...any) {
	if s.err != nil {
		return
	}
	s.next++
	start, err := excelize.CoordinatesToCellName(1, s.next)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetSheetRow(s.sheet, start, &values); err != nil {
		s.err = fmt.Errorf("write %s row %d: %w", s.sheet, s.next, err)
		return
	}
	if bold {
		end, err := excelize.CoordinatesToCellName(len(values), s.next)
		if err != nil {
			s.err = err
			return
		}
		s.err = s.f.SetCellStyle(s.sheet, start, end, s.bold)
	}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
