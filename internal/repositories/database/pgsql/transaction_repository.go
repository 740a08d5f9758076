package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/property_management_app/internal/models"
	"github.com/SscSPs/property_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionSelect = `
SELECT t.transaction_id, t.building_id, t.category, t.amount, t.transaction_date,
	t.payment_method, t.reference, t.source, t.pdf_ref, t.notes,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM transactions t
`

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	m, err := collectOne[models.Transaction](ctx, r.Pool, "transaction", transactionSelect+" WHERE t.transaction_id = $1", transactionID)
	if err != nil {
		return nil, err
	}
	t := mapping.ToDomainTransaction(m)
	return &t, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, companyID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	f := &filterBuilder{}
	f.add("b.company_id = ?", companyID)
	if filter.BuildingID != "" {
		f.add("t.building_id = ?", filter.BuildingID)
	}
	if filter.Category != nil {
		f.add("t.category = ?", string(*filter.Category))
	}
	if filter.From != nil {
		f.add("t.transaction_date >= ?", *filter.From)
	}
	if filter.To != nil {
		f.add("t.transaction_date <= ?", *filter.To)
	}
	if filter.AfterDate != nil && filter.AfterCreatedAt != nil {
		f.add("(t.transaction_date, t.created_at, t.transaction_id) < (?, ?, ?)",
			*filter.AfterDate, *filter.AfterCreatedAt, filter.AfterID)
	}

	query := transactionSelect + " JOIN buildings b ON b.building_id = t.building_id" + f.where() +
		" ORDER BY t.transaction_date DESC, t.created_at DESC, t.transaction_id DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	ms, err := collect[models.Transaction](ctx, r.Pool, "list transactions", query, f.args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO transactions (transaction_id, building_id, category, amount, transaction_date,
			payment_method, reference, source, pdf_ref, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		m.TransactionID, m.BuildingID, m.Category, m.Amount, m.TransactionDate,
		m.PaymentMethod, m.Reference, m.Source, m.PDFRef, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return translateError(err, "save transaction", "transaction")
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET building_id = $1, category = $2, amount = $3, transaction_date = $4,
			payment_method = $5, reference = $6, source = $7, pdf_ref = $8, notes = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE transaction_id = $12`,
		m.BuildingID, m.Category, m.Amount, m.TransactionDate,
		m.PaymentMethod, m.Reference, m.Source, m.PDFRef, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, m.TransactionID,
	)
	if err != nil {
		return translateError(err, "update transaction", "transaction")
	}
	return requireAffected(tag, "transaction")
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return translateError(err, "delete transaction", "transaction")
	}
	return requireAffected(tag, "transaction")
}
