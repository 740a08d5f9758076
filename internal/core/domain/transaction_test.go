package domain_test

import (
	"testing"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalFrom(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTransaction_Validate(t *testing.T) {
	valid := domain.Transaction{
		BuildingID:      "b1",
		Category:        domain.CategoryExpense,
		Amount:          decimalFrom("200"),
		TransactionDate: date(2024, 3, 10),
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr string
	}{
		{name: "valid", mutate: func(*domain.Transaction) {}},
		{name: "missing building", mutate: func(tx *domain.Transaction) { tx.BuildingID = "" }, wantErr: "building ID"},
		{name: "unknown category", mutate: func(tx *domain.Transaction) { tx.Category = "INCOME" }, wantErr: "category"},
		{name: "zero amount", mutate: func(tx *domain.Transaction) { tx.Amount = decimal.Zero }, wantErr: "positive"},
		{name: "negative amount", mutate: func(tx *domain.Transaction) { tx.Amount = decimalFrom("-5") }, wantErr: "positive"},
		{name: "missing date", mutate: func(tx *domain.Transaction) { tx.TransactionDate = date(1, 1, 1) }, wantErr: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCashflowFigures_Add(t *testing.T) {
	a := domain.CashflowFigures{LeaseRevenue: decimalFrom("100"), Revenue: decimalFrom("100"), NetCashflow: decimalFrom("100")}
	b := domain.CashflowFigures{OtherRevenue: decimalFrom("20"), Revenue: decimalFrom("20"), Expenses: decimalFrom("50"), NetCashflow: decimalFrom("-30")}

	sum := a.Add(b)
	assert.True(t, decimalFrom("100").Equal(sum.LeaseRevenue))
	assert.True(t, decimalFrom("20").Equal(sum.OtherRevenue))
	assert.True(t, decimalFrom("120").Equal(sum.Revenue))
	assert.True(t, decimalFrom("50").Equal(sum.Expenses))
	assert.True(t, decimalFrom("70").Equal(sum.NetCashflow))
}
