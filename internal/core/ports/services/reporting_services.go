package services

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
)

// ReportingService defines the interface for generating financial reports.
type ReportingService interface {
	// GetProfitabilityReport aggregates lease rent and ledger transactions per
	// building and month over [start, end]. Empty buildingIDs selects every
	// building of the caller's company; unknown IDs are listed as ignored.
	GetProfitabilityReport(ctx context.Context, userID string, buildingIDs []string, start, end domain.YearMonth, confirmedOnly bool) (*domain.ProfitabilityReport, error)
}
