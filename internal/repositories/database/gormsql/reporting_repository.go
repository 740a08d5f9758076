package gormsql

import (
	"context"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormReportingRepository struct {
	BaseRepository
}

func newGormReportingRepository(db *gorm.DB) *GormReportingRepository {
	return &GormReportingRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ReportingRepository = (*GormReportingRepository)(nil)

func (r *GormReportingRepository) GetProfitabilityInputs(ctx context.Context, buildingIDs []string, from, to time.Time) (*domain.ProfitabilityInputs, error) {
	if len(buildingIDs) == 0 {
		return &domain.ProfitabilityInputs{}, nil
	}

	var buildings []models.Building
	if err := r.db(ctx).Where("building_id IN ?", buildingIDs).Order("name, building_id").Find(&buildings).Error; err != nil {
		return nil, translateError(err, "load report buildings", "building")
	}

	// tenants without a unit drop out of the inner joins
	var leases []models.LeaseRevenueRow
	err := r.db(ctx).Table("leases l").
		Select("l.lease_id, u.building_id, l.start_date, l.end_date, l.rent_amount").
		Joins("JOIN tenants t ON t.tenant_id = l.tenant_id").
		Joins("JOIN units u ON u.unit_id = t.unit_id").
		Where("u.building_id IN ?", buildingIDs).
		Where("l.start_date <= ?", to).
		Where("(l.end_date IS NULL OR l.end_date >= ?)", from).
		Scan(&leases).Error
	if err != nil {
		return nil, translateError(err, "load report leases", "lease")
	}

	fromIdx := from.Year()*12 + int(from.Month())
	toIdx := to.Year()*12 + int(to.Month())
	var payments []models.ConfirmedPaymentRow
	err = r.db(ctx).Table("rent_payments rp").
		Select("rp.lease_id, rp.year, rp.month").
		Joins("JOIN leases l ON l.lease_id = rp.lease_id").
		Joins("JOIN tenants t ON t.tenant_id = l.tenant_id").
		Joins("JOIN units u ON u.unit_id = t.unit_id").
		Where("u.building_id IN ?", buildingIDs).
		Where("rp.is_confirmed = ?", true).
		Where("(rp.year * 12 + rp.month) BETWEEN ? AND ?", fromIdx, toIdx).
		Scan(&payments).Error
	if err != nil {
		return nil, translateError(err, "load report payments", "rent payment")
	}

	var ledger []models.LedgerRow
	err = r.db(ctx).Table("transactions").
		Select("building_id, category, amount, transaction_date").
		Where("building_id IN ?", buildingIDs).
		Where("transaction_date BETWEEN ? AND ?", from, to).
		Scan(&ledger).Error
	if err != nil {
		return nil, translateError(err, "load report transactions", "transaction")
	}

	return mapping.ToDomainProfitabilityInputs(buildings, leases, payments, ledger), nil
}
