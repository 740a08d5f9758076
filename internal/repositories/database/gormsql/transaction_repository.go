package gormsql

import (
	"context"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormTransactionRepository struct {
	BaseRepository
}

func newGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*GormTransactionRepository)(nil)

func (r *GormTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	m, err := findOne[models.Transaction](ctx, r.DB, "transaction", "transaction_id = ?", transactionID)
	if err != nil {
		return nil, err
	}
	t := mapping.ToDomainTransaction(m)
	return &t, nil
}

func (r *GormTransactionRepository) ListTransactions(ctx context.Context, companyID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	q := r.db(ctx).Table("transactions t").Select("t.*").
		Joins("JOIN buildings b ON b.building_id = t.building_id").
		Where("b.company_id = ?", companyID)
	if filter.BuildingID != "" {
		q = q.Where("t.building_id = ?", filter.BuildingID)
	}
	if filter.Category != nil {
		q = q.Where("t.category = ?", string(*filter.Category))
	}
	if filter.From != nil {
		q = q.Where("t.transaction_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("t.transaction_date <= ?", *filter.To)
	}
	if filter.AfterDate != nil && filter.AfterCreatedAt != nil {
		q = q.Where("(t.transaction_date < ? OR (t.transaction_date = ? AND (t.created_at < ? OR (t.created_at = ? AND t.transaction_id < ?))))",
			*filter.AfterDate, *filter.AfterDate, *filter.AfterCreatedAt, *filter.AfterCreatedAt, filter.AfterID)
	}
	q = q.Order("t.transaction_date DESC, t.created_at DESC, t.transaction_id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var ms []models.Transaction
	if err := q.Find(&ms).Error; err != nil {
		return nil, translateError(err, "list transactions", "transaction")
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *GormTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	return translateError(r.db(ctx).Create(&m).Error, "save transaction", "transaction")
}

func (r *GormTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	res := r.db(ctx).Model(&models.Transaction{}).Where("transaction_id = ?", m.TransactionID).Updates(map[string]any{
		"building_id":      m.BuildingID,
		"category":         m.Category,
		"amount":           m.Amount,
		"transaction_date": m.TransactionDate,
		"payment_method":   m.PaymentMethod,
		"reference":        m.Reference,
		"source":           m.Source,
		"pdf_ref":          m.PDFRef,
		"notes":            m.Notes,
		"last_updated_at":  m.LastUpdatedAt,
		"last_updated_by":  m.LastUpdatedBy,
	})
	return requireAffected(res, "update transaction", "transaction")
}

func (r *GormTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	res := r.db(ctx).Where("transaction_id = ?", transactionID).Delete(&models.Transaction{})
	return requireAffected(res, "delete transaction", "transaction")
}
