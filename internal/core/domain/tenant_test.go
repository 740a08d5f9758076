package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestLease_ActiveIn(t *testing.T) {
	tests := []struct {
		name  string
		lease domain.Lease
		month domain.YearMonth
		want  bool
	}{
		{
			name:  "open-ended lease after start",
			lease: domain.Lease{StartDate: date(2024, 1, 15)},
			month: ym(2030, 6),
			want:  true,
		},
		{
			name:  "partial first month counts",
			lease: domain.Lease{StartDate: date(2024, 1, 31)},
			month: ym(2024, 1),
			want:  true,
		},
		{
			name:  "month before start",
			lease: domain.Lease{StartDate: date(2024, 2, 1)},
			month: ym(2024, 1),
			want:  false,
		},
		{
			name:  "partial last month counts",
			lease: domain.Lease{StartDate: date(2024, 1, 1), EndDate: datePtr(date(2024, 6, 1))},
			month: ym(2024, 6),
			want:  true,
		},
		{
			name:  "month after end",
			lease: domain.Lease{StartDate: date(2024, 1, 1), EndDate: datePtr(date(2024, 6, 30))},
			month: ym(2024, 7),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lease.ActiveIn(tt.month))
		})
	}
}

func TestLease_Overlaps(t *testing.T) {
	closed := domain.Lease{StartDate: date(2024, 1, 1), EndDate: datePtr(date(2024, 12, 31))}

	tests := []struct {
		name  string
		other domain.Lease
		want  bool
	}{
		{name: "starts the day after end", other: domain.Lease{StartDate: date(2025, 1, 1)}, want: false},
		{name: "starts on end day", other: domain.Lease{StartDate: date(2024, 12, 31)}, want: true},
		{name: "ends before start", other: domain.Lease{StartDate: date(2023, 1, 1), EndDate: datePtr(date(2023, 12, 31))}, want: false},
		{name: "open-ended started earlier", other: domain.Lease{StartDate: date(2020, 1, 1)}, want: true},
		{name: "contained", other: domain.Lease{StartDate: date(2024, 3, 1), EndDate: datePtr(date(2024, 4, 1))}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, closed.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(closed))
		})
	}
}

func TestPunch_Cost(t *testing.T) {
	p := domain.Punch{Hours: decimalFrom("7.5"), HourlyRate: decimalFrom("40")}
	assert.True(t, decimalFrom("300").Equal(p.Cost()))
}

func TestEmployee_FullName(t *testing.T) {
	assert.Equal(t, "Ana Diaz", domain.Employee{FirstName: "Ana", LastName: "Diaz"}.FullName())
	assert.Equal(t, "Ana", domain.Employee{FirstName: "Ana"}.FullName())
}
