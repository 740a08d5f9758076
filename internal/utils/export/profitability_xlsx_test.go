package export_test

import (
	"bytes"
	"testing"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/SscSPs/property_management_app/internal/utils/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func figures(lease, other, expenses int64) domain.CashflowFigures {
	revenue := decimal.NewFromInt(lease + other)
	return domain.CashflowFigures{
		LeaseRevenue: decimal.NewFromInt(lease),
		OtherRevenue: decimal.NewFromInt(other),
		Revenue:      revenue,
		Expenses:     decimal.NewFromInt(expenses),
		NetCashflow:  revenue.Sub(decimal.NewFromInt(expenses)),
	}
}

func TestWriteProfitabilityXLSX(t *testing.T) {
	jan := domain.YearMonth{Year: 2024, Month: 1}
	feb := domain.YearMonth{Year: 2024, Month: 2}
	months := []domain.MonthlyFigures{
		{Period: jan, CashflowFigures: figures(1000, 0, 0)},
		{Period: feb, CashflowFigures: figures(1000, 50, 200)},
	}
	report := &domain.ProfitabilityReport{
		Start:   jan,
		End:     feb,
		Monthly: months,
		Summary: figures(2000, 50, 200),
		Buildings: []domain.BuildingProfitability{
			{BuildingID: "b1", BuildingName: "Main", Summary: figures(2000, 50, 200), Months: months},
		},
		IgnoredBuildingIDs: []string{"bogus"},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteProfitabilityXLSX(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "Buildings"}, f.GetSheetList())

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(summary), 4)
	assert.Equal(t, []string{"Period", "Lease revenue", "Other revenue", "Revenue", "Expenses", "Net cashflow"}, summary[0])
	assert.Equal(t, []string{"2024-02", "1000", "50", "1050", "200", "850"}, summary[2])
	assert.Equal(t, "Total 2024-01 to 2024-02", summary[3][0])
	assert.Equal(t, "1850", summary[3][5])
	assert.Equal(t, []string{"bogus"}, summary[len(summary)-1])

	buildings, err := f.GetRows("Buildings")
	require.NoError(t, err)
	require.Len(t, buildings, 4)
	assert.Equal(t, []string{"Main", "Total", "2000", "50", "2050", "200", "1850"}, buildings[3])
}
