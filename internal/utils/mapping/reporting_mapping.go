package mapping

import (
	"github.com/SscSPs/property_management_app/internal/core/domain"
	"github.com/SscSPs/property_management_app/internal/models"
)

// ToDomainProfitabilityInputs converts the raw report rows into domain inputs.
func ToDomainProfitabilityInputs(buildings []models.Building, leases []models.LeaseRevenueRow, payments []models.ConfirmedPaymentRow, ledger []models.LedgerRow) *domain.ProfitabilityInputs {
	return &domain.ProfitabilityInputs{
		Buildings: ToDomainBuildingSlice(buildings),
		Leases: mapSlice(leases, func(m models.LeaseRevenueRow) domain.LeaseRevenueRow {
			return domain.LeaseRevenueRow{
				LeaseID:    m.LeaseID,
				BuildingID: m.BuildingID,
				StartDate:  domain.DateOnly(m.StartDate),
				EndDate:    datePtr(m.EndDate),
				RentAmount: m.RentAmount,
			}
		}),
		ConfirmedPayments: mapSlice(payments, func(m models.ConfirmedPaymentRow) domain.ConfirmedPaymentRow {
			return domain.ConfirmedPaymentRow{LeaseID: m.LeaseID, Year: m.Year, Month: m.Month}
		}),
		Ledger: mapSlice(ledger, func(m models.LedgerRow) domain.LedgerRow {
			return domain.LedgerRow{
				BuildingID:      m.BuildingID,
				Category:        domain.TransactionCategory(m.Category),
				Amount:          m.Amount,
				TransactionDate: domain.DateOnly(m.TransactionDate),
			}
		}),
	}
}
