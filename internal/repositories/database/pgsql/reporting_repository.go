package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// Leases reach a building only through the tenant's current unit; the inner
// joins drop leases of tenants without a unit.
const leaseRevenueQuery = `
SELECT l.lease_id, u.building_id, l.start_date, l.end_date, l.rent_amount
FROM leases l
JOIN tenants t ON t.tenant_id = l.tenant_id
JOIN units u ON u.unit_id = t.unit_id
WHERE u.building_id = ANY($1::uuid[])
	AND l.start_date <= $3::date
	AND (l.end_date IS NULL OR l.end_date >= $2::date)
`

const confirmedPaymentQuery = `
SELECT rp.lease_id, rp.year, rp.month
FROM rent_payments rp
JOIN leases l ON l.lease_id = rp.lease_id
JOIN tenants t ON t.tenant_id = l.tenant_id
JOIN units u ON u.unit_id = t.unit_id
WHERE u.building_id = ANY($1::uuid[])
	AND rp.is_confirmed
	AND (rp.year * 12 + rp.month) BETWEEN $2 AND $3
`

const ledgerQuery = `
SELECT building_id, category, amount, transaction_date
FROM transactions
WHERE building_id = ANY($1::uuid[])
	AND transaction_date BETWEEN $2::date AND $3::date
`

// GetProfitabilityInputs loads the four row sets the aggregation needs.
// from and to are the first and last day of the reporting range.
func (r *PgxReportingRepository) GetProfitabilityInputs(ctx context.Context, buildingIDs []string, from, to time.Time) (*domain.ProfitabilityInputs, error) {
	if len(buildingIDs) == 0 {
		return &domain.ProfitabilityInputs{}, nil
	}

	buildings, err := collect[models.Building](ctx, r.Pool, "load report buildings",
		buildingSelect+" WHERE building_id = ANY($1::uuid[]) ORDER BY name, building_id", buildingIDs)
	if err != nil {
		return nil, err
	}

	leases, err := collect[models.LeaseRevenueRow](ctx, r.Pool, "load report leases", leaseRevenueQuery, buildingIDs, from, to)
	if err != nil {
		return nil, err
	}

	fromIdx := from.Year()*12 + int(from.Month())
	toIdx := to.Year()*12 + int(to.Month())
	payments, err := collect[models.ConfirmedPaymentRow](ctx, r.Pool, "load report payments", confirmedPaymentQuery, buildingIDs, fromIdx, toIdx)
	if err != nil {
		return nil, err
	}

	ledger, err := collect[models.LedgerRow](ctx, r.Pool, "load report transactions", ledgerQuery, buildingIDs, from, to)
	if err != nil {
		return nil, err
	}

	return mapping.ToDomainProfitabilityInputs(buildings, leases, payments, ledger), nil
}
