package gormsql

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormTenantRepository struct {
	BaseRepository
}

func newGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TenantRepositoryFacade = (*GormTenantRepository)(nil)

func (r *GormTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	m, err := findOne[models.Tenant](ctx, r.DB, "tenant", "tenant_id = ?", tenantID)
	if err != nil {
		return nil, err
	}
	t := mapping.ToDomainTenant(m)
	return &t, nil
}

func (r *GormTenantRepository) ListTenants(ctx context.Context, companyID string) ([]domain.Tenant, error) {
	var ms []models.Tenant
	if err := r.db(ctx).Where("company_id = ?", companyID).Order("name").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list tenants", "tenant")
	}
	return mapping.ToDomainTenantSlice(ms), nil
}

func (r *GormTenantRepository) ListTenantsByUnit(ctx context.Context, unitID string) ([]domain.Tenant, error) {
	var ms []models.Tenant
	if err := r.db(ctx).Where("unit_id = ?", unitID).Order("name").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list tenants", "tenant")
	}
	return mapping.ToDomainTenantSlice(ms), nil
}

func (r *GormTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	return translateError(r.db(ctx).Create(&m).Error, "save tenant", "tenant")
}

func (r *GormTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	res := r.db(ctx).Model(&models.Tenant{}).Where("tenant_id = ?", m.TenantID).Updates(map[string]any{
		"unit_id":         m.UnitID,
		"name":            m.Name,
		"email":           m.Email,
		"phone":           m.Phone,
		"status":          m.Status,
		"notes":           m.Notes,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	return requireAffected(res, "update tenant", "tenant")
}

func (r *GormTenantRepository) DeleteTenant(ctx context.Context, tenantID string) error {
	res := r.db(ctx).Where("tenant_id = ?", tenantID).Delete(&models.Tenant{})
	return requireAffected(res, "delete tenant", "tenant")
}

type GormLeaseRepository struct {
	BaseRepository
}

func newGormLeaseRepository(db *gorm.DB) *GormLeaseRepository {
	return &GormLeaseRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.LeaseRepositoryFacade = (*GormLeaseRepository)(nil)

func (r *GormLeaseRepository) FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	m, err := findOne[models.Lease](ctx, r.DB, "lease", "lease_id = ?", leaseID)
	if err != nil {
		return nil, err
	}
	l := mapping.ToDomainLease(m)
	return &l, nil
}

func (r *GormLeaseRepository) ListLeasesByTenant(ctx context.Context, tenantID string) ([]domain.Lease, error) {
	var ms []models.Lease
	if err := r.db(ctx).Where("tenant_id = ?", tenantID).Order("start_date").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list leases", "lease")
	}
	return mapping.ToDomainLeaseSlice(ms), nil
}

func (r *GormLeaseRepository) ListLeasesByBuilding(ctx context.Context, buildingID string) ([]domain.Lease, error) {
	var ms []models.Lease
	err := r.db(ctx).Table("leases l").Select("l.*").
		Joins("JOIN tenants t ON t.tenant_id = l.tenant_id").
		Joins("JOIN units u ON u.unit_id = t.unit_id").
		Where("u.building_id = ?", buildingID).
		Order("l.start_date").
		Find(&ms).Error
	if err != nil {
		return nil, translateError(err, "list leases", "lease")
	}
	return mapping.ToDomainLeaseSlice(ms), nil
}

func (r *GormLeaseRepository) SaveLease(ctx context.Context, lease domain.Lease) error {
	m := mapping.ToModelLease(lease)
	return translateError(r.db(ctx).Create(&m).Error, "save lease", "lease")
}

func (r *GormLeaseRepository) UpdateLease(ctx context.Context, lease domain.Lease) error {
	m := mapping.ToModelLease(lease)
	res := r.db(ctx).Model(&models.Lease{}).Where("lease_id = ?", m.LeaseID).Updates(map[string]any{
		"start_date":      m.StartDate,
		"end_date":        m.EndDate,
		"rent_amount":     m.RentAmount,
		"payment_method":  m.PaymentMethod,
		"pdf_ref":         m.PDFRef,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	return requireAffected(res, "update lease", "lease")
}

func (r *GormLeaseRepository) DeleteLease(ctx context.Context, leaseID string) error {
	res := r.db(ctx).Where("lease_id = ?", leaseID).Delete(&models.Lease{})
	return requireAffected(res, "delete lease", "lease")
}

type GormRentPaymentRepository struct {
	BaseRepository
}

func newGormRentPaymentRepository(db *gorm.DB) *GormRentPaymentRepository {
	return &GormRentPaymentRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.RentPaymentRepositoryFacade = (*GormRentPaymentRepository)(nil)

func (r *GormRentPaymentRepository) FindRentPaymentByID(ctx context.Context, paymentID string) (*domain.RentPayment, error) {
	m, err := findOne[models.RentPayment](ctx, r.DB, "rent payment", "payment_id = ?", paymentID)
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainRentPayment(m)
	return &p, nil
}

func (r *GormRentPaymentRepository) ListRentPaymentsByLease(ctx context.Context, leaseID string) ([]domain.RentPayment, error) {
	var ms []models.RentPayment
	if err := r.db(ctx).Where("lease_id = ?", leaseID).Order("year, month").Find(&ms).Error; err != nil {
		return nil, translateError(err, "list rent payments", "rent payment")
	}
	return mapping.ToDomainRentPaymentSlice(ms), nil
}

func (r *GormRentPaymentRepository) SaveRentPayments(ctx context.Context, payments []domain.RentPayment) error {
	if len(payments) == 0 {
		return nil
	}
	ms := make([]models.RentPayment, 0, len(payments))
	for _, p := range payments {
		ms = append(ms, mapping.ToModelRentPayment(p))
	}
	err := r.db(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&ms).Error
	})
	return translateError(err, "save rent payments", "rent payment")
}

func (r *GormRentPaymentRepository) UpdateRentPayment(ctx context.Context, payment domain.RentPayment) error {
	m := mapping.ToModelRentPayment(payment)
	res := r.db(ctx).Model(&models.RentPayment{}).Where("payment_id = ?", m.PaymentID).Updates(map[string]any{
		"amount":          m.Amount,
		"is_confirmed":    m.IsConfirmed,
		"confirmed_at":    m.ConfirmedAt,
		"confirmed_by":    m.ConfirmedBy,
		"last_updated_at": m.LastUpdatedAt,
		"last_updated_by": m.LastUpdatedBy,
	})
	return requireAffected(res, "update rent payment", "rent payment")
}

func (r *GormRentPaymentRepository) DeleteRentPayment(ctx context.Context, paymentID string) error {
	res := r.db(ctx).Where("payment_id = ?", paymentID).Delete(&models.RentPayment{})
	return requireAffected(res, "delete rent payment", "rent payment")
}
