package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/property_management_app/internal/apperrors"
	"github.com/SscSPs/property_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/property_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/google/uuid"
)

// maxScheduleMonths bounds one GenerateRentSchedule call.
const maxScheduleMonths = 600

type rentPaymentService struct {
	BaseService
	scope       companyScope
	paymentRepo portsrepo.RentPaymentRepositoryFacade
}

// NewRentPaymentService creates a new RentPaymentService.
func NewRentPaymentService(
	paymentRepo portsrepo.RentPaymentRepositoryFacade,
	leaseRepo portsrepo.LeaseReader,
	tenantRepo portsrepo.TenantReader,
	options ...ServiceOption,
) portssvc.RentPaymentSvcFacade {
	s := &rentPaymentService{
		paymentRepo: paymentRepo,
		scope:       companyScope{tenants: tenantRepo, leases: leaseRepo},
	}
	s.apply(options)
	return s
}

// scheduleMonths lists the months a schedule covers: from the lease start up
// to the earlier of through and the lease end.
func scheduleMonths(l domain.Lease, through *domain.YearMonth) ([]domain.YearMonth, error) {
	if through == nil && l.EndDate == nil {
		return nil, apperrors.NewValidationFailedError("through is required for an open-ended lease")
	}
	if through != nil && !through.Valid() {
		return nil, validationf("invalid month %s", *through)
	}
	first := domain.YearMonthOf(l.StartDate)
	var last domain.YearMonth
	switch {
	case through == nil:
		last = domain.YearMonthOf(*l.EndDate)
	case l.EndDate == nil:
		last = *through
	default:
		last = *through
		if end := domain.YearMonthOf(*l.EndDate); end.Before(last) {
			last = end
		}
	}
	if n := domain.MonthsBetween(first, last); n > maxScheduleMonths {
		return nil, validationf("schedule spans %d months, the limit is %d", n, maxScheduleMonths)
	}
	return domain.MonthRange(first, last), nil
}

func (s *rentPaymentService) GenerateRentSchedule(ctx context.Context, userID, leaseID string, through *domain.YearMonth) ([]domain.RentPayment, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	lease, err := s.scope.lease(ctx, companyID, leaseID)
	if err != nil {
		return nil, err
	}
	months, err := scheduleMonths(*lease, through)
	if err != nil {
		return nil, err
	}
	existing, err := s.paymentRepo.ListRentPaymentsByLease(ctx, leaseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rent payments", slog.String("lease_id", leaseID))
		return nil, err
	}
	have := make(map[domain.YearMonth]struct{}, len(existing))
	for _, p := range existing {
		have[p.Period()] = struct{}{}
	}

	now := s.Now()
	created := make([]domain.RentPayment, 0, len(months))
	for _, m := range months {
		if _, ok := have[m]; ok {
			continue
		}
		created = append(created, domain.RentPayment{
			PaymentID:   uuid.NewString(),
			LeaseID:     leaseID,
			Year:        m.Year,
			Month:       m.Month,
			Amount:      lease.RentAmount,
			AuditFields: domain.NewAuditFields(userID, now),
		})
	}
	if len(created) == 0 {
		return created, nil
	}
	if err := s.paymentRepo.SaveRentPayments(ctx, created); err != nil {
		s.LogError(ctx, err, "Failed to save rent schedule",
			slog.String("lease_id", leaseID),
			slog.Int("count", len(created)))
		return nil, err
	}
	s.LogInfo(ctx, "Rent schedule generated",
		slog.String("lease_id", leaseID),
		slog.Int("created", len(created)))
	return created, nil
}

func (s *rentPaymentService) CreateRentPayment(ctx context.Context, userID, leaseID string, req dto.CreateRentPaymentRequest) (*domain.RentPayment, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	lease, err := s.scope.lease(ctx, companyID, leaseID)
	if err != nil {
		return nil, err
	}
	period, err := domain.ParseYearMonth(req.Period)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	if !lease.ActiveIn(period) {
		return nil, validationf("lease is not active in %s", period)
	}
	amount := lease.RentAmount
	if req.Amount != nil {
		amount = *req.Amount
	}
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("amount must be positive")
	}

	now := s.Now()
	payment := domain.RentPayment{
		PaymentID:   uuid.NewString(),
		LeaseID:     leaseID,
		Year:        period.Year,
		Month:       period.Month,
		Amount:      amount,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if req.Confirmed {
		markConfirmed(&payment, userID, now)
	}
	if err := s.paymentRepo.SaveRentPayments(ctx, []domain.RentPayment{payment}); err != nil {
		s.LogError(ctx, err, "Failed to save rent payment",
			slog.String("lease_id", leaseID),
			slog.String("period", period.String()))
		return nil, err
	}
	return &payment, nil
}

func (s *rentPaymentService) ListRentPayments(ctx context.Context, userID, leaseID string) ([]domain.RentPayment, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	if _, err := s.scope.lease(ctx, companyID, leaseID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListRentPaymentsByLease(ctx, leaseID)
}

// payment loads a rent payment whose lease belongs to the company.
func (s *rentPaymentService) payment(ctx context.Context, companyID, paymentID string) (*domain.RentPayment, error) {
	if err := requireUUID(paymentID, "rent payment"); err != nil {
		return nil, err
	}
	p, err := s.paymentRepo.FindRentPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.scope.lease(ctx, companyID, p.LeaseID); err != nil {
		return nil, apperrors.NewNotFoundError("rent payment not found")
	}
	return p, nil
}

func markConfirmed(p *domain.RentPayment, userID string, now time.Time) {
	p.IsConfirmed = true
	p.ConfirmedAt = &now
	p.ConfirmedBy = &userID
}

func (s *rentPaymentService) setConfirmed(ctx context.Context, userID, paymentID string, confirmed bool) (*domain.RentPayment, error) {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	p, err := s.payment(ctx, companyID, paymentID)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	if confirmed {
		markConfirmed(p, userID, now)
	} else {
		p.IsConfirmed = false
		p.ConfirmedAt = nil
		p.ConfirmedBy = nil
	}
	p.Touch(userID, now)
	if err := s.paymentRepo.UpdateRentPayment(ctx, *p); err != nil {
		s.LogError(ctx, err, "Failed to update rent payment", slog.String("payment_id", paymentID))
		return nil, err
	}
	return p, nil
}

func (s *rentPaymentService) ConfirmRentPayment(ctx context.Context, userID, paymentID string) (*domain.RentPayment, error) {
	return s.setConfirmed(ctx, userID, paymentID, true)
}

func (s *rentPaymentService) UnconfirmRentPayment(ctx context.Context, userID, paymentID string) (*domain.RentPayment, error) {
	return s.setConfirmed(ctx, userID, paymentID, false)
}

func (s *rentPaymentService) DeleteRentPayment(ctx context.Context, userID, paymentID string) error {
	companyID, err := s.AuthorizeUser(ctx, userID, domain.RoleMember)
	if err != nil {
		return err
	}
	if _, err := s.payment(ctx, companyID, paymentID); err != nil {
		return err
	}
	if err := s.paymentRepo.DeleteRentPayment(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete rent payment", slog.String("payment_id", paymentID))
		return err
	}
	return nil
}
