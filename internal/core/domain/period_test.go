package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ym(year, month int) domain.YearMonth {
	return domain.YearMonth{Year: year, Month: month}
}

func TestParseYearMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.YearMonth
		wantErr bool
	}{
		{name: "plain month", input: "2024-03", want: ym(2024, 3)},
		{name: "december", input: "1999-12", want: ym(1999, 12)},
		{name: "month out of range", input: "2024-13", wantErr: true},
		{name: "full date", input: "2024-03-01", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseYearMonth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestYearMonth_Bounds(t *testing.T) {
	feb := ym(2024, 2)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), feb.FirstDay())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), feb.LastDay())
	assert.Equal(t, ym(2025, 1), ym(2024, 12).Next())
	assert.True(t, ym(2023, 12).Before(ym(2024, 1)))
	assert.True(t, ym(2024, 1).After(ym(2023, 12)))
	assert.False(t, feb.Before(feb))
}

func TestYearMonth_Valid(t *testing.T) {
	assert.True(t, ym(2024, 1).Valid())
	assert.False(t, ym(2024, 0).Valid())
	assert.False(t, ym(2024, 13).Valid())
	assert.False(t, ym(0, 5).Valid())
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end domain.YearMonth
		want       []domain.YearMonth
	}{
		{name: "single month", start: ym(2024, 5), end: ym(2024, 5), want: []domain.YearMonth{ym(2024, 5)}},
		{name: "across year end", start: ym(2023, 11), end: ym(2024, 2), want: []domain.YearMonth{ym(2023, 11), ym(2023, 12), ym(2024, 1), ym(2024, 2)}},
		{name: "end before start", start: ym(2024, 5), end: ym(2024, 4), want: []domain.YearMonth{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.MonthRange(tt.start, tt.end)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), domain.MonthsBetween(tt.start, tt.end))
		})
	}
}
