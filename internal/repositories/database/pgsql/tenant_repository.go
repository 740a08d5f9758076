package pgsql

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTenantRepository struct {
	BaseRepository
}

func newPgxTenantRepository(pool *pgxpool.Pool) *PgxTenantRepository {
	return &PgxTenantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

const tenantSelect = `
SELECT tenant_id, company_id, unit_id, name, email, phone, status, notes,
	created_at, created_by, last_updated_at, last_updated_by
FROM tenants
`

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	m, err := collectOne[models.Tenant](ctx, r.Pool, "tenant", tenantSelect+" WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, err
	}
	t := mapping.ToDomainTenant(m)
	return &t, nil
}

func (r *PgxTenantRepository) ListTenants(ctx context.Context, companyID string) ([]domain.Tenant, error) {
	ms, err := collect[models.Tenant](ctx, r.Pool, "list tenants", tenantSelect+" WHERE company_id = $1 ORDER BY name", companyID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTenantSlice(ms), nil
}

func (r *PgxTenantRepository) ListTenantsByUnit(ctx context.Context, unitID string) ([]domain.Tenant, error) {
	ms, err := collect[models.Tenant](ctx, r.Pool, "list tenants", tenantSelect+" WHERE unit_id = $1 ORDER BY name", unitID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTenantSlice(ms), nil
}

func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO tenants (tenant_id, company_id, unit_id, name, email, phone, status, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.TenantID, m.CompanyID, m.UnitID, m.Name, m.Email, m.Phone, m.Status, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save tenant", "tenant")
}

func (r *PgxTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE tenants
		SET unit_id = $1, name = $2, email = $3, phone = $4, status = $5, notes = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE tenant_id = $9`,
		m.UnitID, m.Name, m.Email, m.Phone, m.Status, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, m.TenantID,
	)
	if err != nil {
		return translateError(err, "update tenant", "tenant")
	}
	return requireAffected(tag, "tenant")
}

func (r *PgxTenantRepository) DeleteTenant(ctx context.Context, tenantID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tenants WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return translateError(err, "delete tenant", "tenant")
	}
	return requireAffected(tag, "tenant")
}

type PgxLeaseRepository struct {
	BaseRepository
}

func newPgxLeaseRepository(pool *pgxpool.Pool) *PgxLeaseRepository {
	return &PgxLeaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LeaseRepositoryFacade = (*PgxLeaseRepository)(nil)

const leaseSelect = `
SELECT l.lease_id, l.tenant_id, l.start_date, l.end_date, l.rent_amount, l.payment_method, l.pdf_ref,
	l.created_at, l.created_by, l.last_updated_at, l.last_updated_by
FROM leases l
`

func (r *PgxLeaseRepository) FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	m, err := collectOne[models.Lease](ctx, r.Pool, "lease", leaseSelect+" WHERE l.lease_id = $1", leaseID)
	if err != nil {
		return nil, err
	}
	l := mapping.ToDomainLease(m)
	return &l, nil
}

func (r *PgxLeaseRepository) ListLeasesByTenant(ctx context.Context, tenantID string) ([]domain.Lease, error) {
	ms, err := collect[models.Lease](ctx, r.Pool, "list leases", leaseSelect+" WHERE l.tenant_id = $1 ORDER BY l.start_date", tenantID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainLeaseSlice(ms), nil
}

func (r *PgxLeaseRepository) ListLeasesByBuilding(ctx context.Context, buildingID string) ([]domain.Lease, error) {
	ms, err := collect[models.Lease](ctx, r.Pool, "list leases", leaseSelect+`
		JOIN tenants t ON t.tenant_id = l.tenant_id
		JOIN units u ON u.unit_id = t.unit_id
		WHERE u.building_id = $1
		ORDER BY l.start_date`, buildingID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainLeaseSlice(ms), nil
}

func (r *PgxLeaseRepository) SaveLease(ctx context.Context, lease domain.Lease) error {
	m := mapping.ToModelLease(lease)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO leases (lease_id, tenant_id, start_date, end_date, rent_amount, payment_method, pdf_ref,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.LeaseID, m.TenantID, m.StartDate, m.EndDate, m.RentAmount, m.PaymentMethod, m.PDFRef,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save lease", "lease")
}

func (r *PgxLeaseRepository) UpdateLease(ctx context.Context, lease domain.Lease) error {
	m := mapping.ToModelLease(lease)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE leases
		SET start_date = $1, end_date = $2, rent_amount = $3, payment_method = $4, pdf_ref = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE lease_id = $8`,
		m.StartDate, m.EndDate, m.RentAmount, m.PaymentMethod, m.PDFRef,
		m.LastUpdatedAt, m.LastUpdatedBy, m.LeaseID,
	)
	if err != nil {
		return translateError(err, "update lease", "lease")
	}
	return requireAffected(tag, "lease")
}

func (r *PgxLeaseRepository) DeleteLease(ctx context.Context, leaseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM leases WHERE lease_id = $1`, leaseID)
	if err != nil {
		return translateError(err, "delete lease", "lease")
	}
	return requireAffected(tag, "lease")
}

type PgxRentPaymentRepository struct {
	BaseRepository
}

func newPgxRentPaymentRepository(pool *pgxpool.Pool) *PgxRentPaymentRepository {
	return &PgxRentPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RentPaymentRepositoryFacade = (*PgxRentPaymentRepository)(nil)

const rentPaymentSelect = `
SELECT payment_id, lease_id, year, month, amount, is_confirmed, confirmed_at, confirmed_by,
	created_at, created_by, last_updated_at, last_updated_by
FROM rent_payments
`

func (r *PgxRentPaymentRepository) FindRentPaymentByID(ctx context.Context, paymentID string) (*domain.RentPayment, error) {
	m, err := collectOne[models.RentPayment](ctx, r.Pool, "rent payment", rentPaymentSelect+" WHERE payment_id = $1", paymentID)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainRentPayment(m)
	return &p, nil
}

func (r *PgxRentPaymentRepository) ListRentPaymentsByLease(ctx context.Context, leaseID string) ([]domain.RentPayment, error) {
	ms, err := collect[models.RentPayment](ctx, r.Pool, "list rent payments", rentPaymentSelect+" WHERE lease_id = $1 ORDER BY year, month", leaseID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainRentPaymentSlice(ms), nil
}

func (r *PgxRentPaymentRepository) SaveRentPayments(ctx context.Context, payments []domain.RentPayment) error {
	if len(payments) == 0 {
		return nil
	}
	return r.withTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, p := range payments {
			m := mapping.ToModelRentPayment(p)
			batch.Queue(`
				INSERT INTO rent_payments (payment_id, lease_id, year, month, amount, is_confirmed, confirmed_at, confirmed_by,
					created_at, created_by, last_updated_at, last_updated_by)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
				m.PaymentID, m.LeaseID, m.Year, m.Month, m.Amount, m.IsConfirmed, m.ConfirmedAt, m.ConfirmedBy,
				m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range payments {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return translateError(err, "save rent payments", "rent payment")
			}
		}
		return translateError(br.Close(), "save rent payments", "rent payment")
	})
}

func (r *PgxRentPaymentRepository) UpdateRentPayment(ctx context.Context, payment domain.RentPayment) error {
	m := mapping.ToModelRentPayment(payment)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE rent_payments
		SET amount = $1, is_confirmed = $2, confirmed_at = $3, confirmed_by = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE payment_id = $7`,
		m.Amount, m.IsConfirmed, m.ConfirmedAt, m.ConfirmedBy,
		m.LastUpdatedAt, m.LastUpdatedBy, m.PaymentID,
	)
	if err != nil {
		return translateError(err, "update rent payment", "rent payment")
	}
	return requireAffected(tag, "rent payment")
}

func (r *PgxRentPaymentRepository) DeleteRentPayment(ctx context.Context, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rent_payments WHERE payment_id = $1`, paymentID)
	if err != nil {
		return translateError(err, "delete rent payment", "rent payment")
	}
	return requireAffected(tag, "rent payment")
}
