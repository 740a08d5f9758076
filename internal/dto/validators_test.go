package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, dto.RegisterValidators(v))
	return v
}

func TestRegisterValidators(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{name: "report months", value: dto.ProfitabilityParams{Start: "2024-01", End: "2024-12"}, valid: true},
		{name: "report month out of range", value: dto.ProfitabilityParams{Start: "2024-00", End: "2024-12"}},
		{name: "report date instead of month", value: dto.ProfitabilityParams{Start: "2024-01-05", End: "2024-12"}},
		{name: "rent payment period", value: dto.CreateRentPaymentRequest{Period: "2025-07"}, valid: true},
		{name: "transaction filter category", value: dto.ListTransactionsParams{Category: "REVENUE", Limit: 10}, valid: true},
		{name: "transaction filter bad category", value: dto.ListTransactionsParams{Category: "revenue", Limit: 10}},
		{name: "approve without role", value: dto.ApproveAccessRequestRequest{}, valid: true},
		{name: "approve as readonly", value: dto.ApproveAccessRequestRequest{Role: "READONLY"}, valid: true},
		{name: "approve as owner", value: dto.ApproveAccessRequestRequest{Role: "OWNER"}},
		{name: "role update requires role", value: dto.UpdateUserRoleRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := dto.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-02-29", dto.FormatDate(d))

	_, err = dto.ParseDate("2023-02-29")
	assert.Error(t, err)

	none, err := dto.ParseOptionalDate(nil)
	assert.NoError(t, err)
	assert.Nil(t, none)

	empty := ""
	none, err = dto.ParseOptionalDate(&empty)
	assert.NoError(t, err)
	assert.Nil(t, none)
}
