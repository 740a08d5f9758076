package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultTransactionPageSize = 50
	maxTransactionPageSize     = 500
)

type transactionService struct {
	BaseService
	scope           companyScope
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	buildingRepo portsrepo.BuildingReader,
	options ...ServiceOption,
) portssvc.TransactionSvcFacade {
	s := &transactionService{
		transactionRepo: transactionRepo,
		scope:           companyScope{buildings: buildingRepo},
	}
	s.apply(options)
	return s
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	if _, err := s.scope.building(ctx, companyID, req.BuildingID); err != nil {
		return nil, err
	}
	date, err := dto.ParseDate(req.TransactionDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BuildingID:      req.BuildingID,
		Category:        domain.TransactionCategory(req.Category),
		Amount:          req.Amount,
		TransactionDate: date,
		PaymentMethod:   req.PaymentMethod,
		Reference:       req.Reference,
		Source:          req.Source,
		PDFRef:          req.PDFRef,
		Notes:           req.Notes,
		AuditFields:     domain.NewAuditFields(userID, s.Now()),
	}
	if err := txn.Validate(); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("building_id", req.BuildingID))
		return nil, err
	}
	return &txn, nil
}

// transaction loads a transaction whose building belongs to the company.
func (s *transactionService) transaction(ctx context.Context, companyID, transactionID string) (*domain.Transaction, error) {
	if err := requireUUID(transactionID, "transaction"); err != nil {
		return nil, err
	}
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.scope.building(ctx, companyID, txn.BuildingID); err != nil {
		return nil, apperrors.NewNotFoundError("transaction not found")
	}
	return txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.transaction(ctx, companyID, transactionID)
}

// buildFilter turns query parameters into a repository filter asking for one extra row.
func (s *transactionService) buildFilter(ctx context.Context, companyID string, params dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}
	filter := domain.TransactionFilter{Limit: limit + 1}

	if params.BuildingID != "" {
		if _, err := s.scope.building(ctx, companyID, params.BuildingID); err != nil {
			return filter, err
		}
		filter.BuildingID = params.BuildingID
	}
	if params.Category != "" {
		category := domain.TransactionCategory(params.Category)
		if !category.Valid() {
			return filter, validationf("invalid category %q", params.Category)
		}
		filter.Category = &category
	}
	if params.From != "" {
		from, err := dto.ParseDate(params.From)
		if err != nil {
			return filter, apperrors.NewValidationFailedError(err.Error())
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := dto.ParseDate(params.To)
		if err != nil {
			return filter, apperrors.NewValidationFailedError(err.Error())
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, apperrors.NewValidationFailedError("to must not be before from")
	}
	if params.NextToken != "" {
		cursor, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return filter, apperrors.NewValidationFailedError("invalid nextToken")
		}
		filter.AfterDate = &cursor.Date
		filter.AfterCreatedAt = &cursor.CreatedAt
		filter.AfterID = cursor.ID
	}
	return filter, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, "", err
	}
	filter, err := s.buildFilter(ctx, companyID, params)
	if err != nil {
		return nil, "", err
	}
	txns, err := s.transactionRepo.ListTransactions(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("company_id", companyID))
		return nil, "", err
	}

	pageSize := filter.Limit - 1
	if len(txns) <= pageSize {
		return txns, "", nil
	}
	page := txns[:pageSize]
	last := page[len(page)-1]
	next := pagination.EncodeCursor(pagination.Cursor{
		Date:      last.TransactionDate,
		CreatedAt: last.CreatedAt,
		ID:        last.TransactionID,
	})
	return page, next, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	txn, err := s.transaction(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}
	if req.Category != nil {
		txn.Category = domain.TransactionCategory(*req.Category)
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.TransactionDate != nil {
		date, err := dto.ParseDate(*req.TransactionDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		txn.TransactionDate = date
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = *req.PaymentMethod
	}
	if req.Reference != nil {
		txn.Reference = *req.Reference
	}
	if req.Source != nil {
		txn.Source = *req.Source
	}
	if req.PDFRef != nil {
		txn.PDFRef = req.PDFRef
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	if err := txn.Validate(); err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	txn.Touch(userID, s.Now())
	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return err
	}
	if _, err := s.transaction(ctx, companyID, transactionID); err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	return nil
}
