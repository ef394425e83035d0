package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/event"
	"credit-engine/internal/infrastructure/monitoring"
	"credit-engine/internal/pkg/apperrors"
)

type CreditService interface {
	Issue(ctx context.Context, candidate *Credit) (*Credit, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*Credit, error)
	FindByCodeForCustomer(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error)
}

var _ CreditService = (*creditService)(nil)

type creditService struct {
	repo            Repository
	customerService customer.CustomerService
	pub             event.Publisher
	logger          *slog.Logger
	now             func() time.Time
}

func NewCreditService(repo Repository, cs customer.CustomerService, pub event.Publisher, logger *slog.Logger) CreditService {
	if repo == nil {
		panic("credit repository cannot be nil")
	}
	if cs == nil {
		panic("customer service cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCreditService, using default stderr handler")
	}
	if pub == nil {
		pub = event.NoopPublisher{}
	}
	return &creditService{
		repo:            repo,
		customerService: cs,
		pub:             pub,
		logger:          logger.With(slog.String("component", "creditService")),
		now:             time.Now,
	}
}

func (s *creditService) Issue(ctx context.Context, candidate *Credit) (*Credit, error) {
	s.logger.InfoContext(ctx, "Attempting to issue new credit", slog.Int64("customerID", candidate.CustomerID))

	// The date rule runs before the customer lookup so a clearly invalid
	// request costs no storage round-trip.
	if err := s.validDayFirstInstallment(candidate.DayFirstInstallment); err != nil {
		s.logger.WarnContext(ctx, "Rejected credit with invalid first installment date",
			slog.Time("dayFirstInstallment", candidate.DayFirstInstallment))
		return nil, err
	}

	owner, err := s.customerService.GetByID(ctx, candidate.CustomerID)
	if err != nil {
		s.logger.WarnContext(ctx, "Credit owner could not be resolved", slog.Any("error", err))
		return nil, err
	}

	candidate.Customer = owner
	candidate.CustomerID = owner.ID
	candidate.Status = StatusInProgress
	candidate.CreditCode = uuid.New()

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to create credit", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save credit: %w", err)
	}

	monitoring.Business.CreditsIssuedTotal.Inc()
	s.logger.InfoContext(ctx, "Successfully issued credit",
		slog.Int64("creditID", created.ID), slog.String("creditCode", created.CreditCode.String()))

	issued := event.CreditIssuedEvent{
		Timestamp: s.now(),
		Payload: event.CreditPayload{
			CreditID:            created.ID,
			CreditCode:          created.CreditCode,
			CreditValue:         created.CreditValue,
			NumberOfInstallment: created.NumberOfInstallment,
			CustomerID:          created.CustomerID,
		},
	}
	if pubErr := s.pub.PublishCreditIssued(ctx, issued); pubErr != nil {
		s.logger.ErrorContext(ctx, "Credit issued, but FAILED to publish issuance event", slog.Any("error", pubErr))
	}

	return created, nil
}

func (s *creditService) ListByCustomer(ctx context.Context, customerID int64) ([]*Credit, error) {
	s.logger.DebugContext(ctx, "Listing credits for customer", slog.Int64("customerID", customerID))

	credits, err := s.repo.FindAllByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing credits", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list credits for customer %d: %w", customerID, err)
	}

	return credits, nil
}

func (s *creditService) FindByCodeForCustomer(ctx context.Context, customerID int64, creditCode uuid.UUID) (*Credit, error) {
	s.logger.DebugContext(ctx, "Finding credit by code", slog.String("creditCode", creditCode.String()))

	found, err := s.repo.FindByCreditCode(ctx, creditCode)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Credit code not found", slog.String("creditCode", creditCode.String()))
			return nil, fmt.Errorf("%w: CreditCode %s not found", apperrors.ErrNotFound, creditCode)
		}
		s.logger.ErrorContext(ctx, "Repository error finding credit by code", slog.Any("error", err))
		return nil, fmt.Errorf("failed to find credit %s: %w", creditCode, err)
	}

	if found.CustomerID != customerID {
		// Deliberately vague so a caller cannot confirm that the code exists
		// under a different owner.
		s.logger.WarnContext(ctx, "Credit ownership mismatch",
			slog.Int64("requestedBy", customerID), slog.Int64("ownedBy", found.CustomerID))
		return nil, fmt.Errorf("%w: Contact admin", apperrors.ErrForbidden)
	}

	return found, nil
}

func (s *creditService) validDayFirstInstallment(dayFirstInstallment time.Time) error {
	// Calendar-month arithmetic over whole dates, not a 90-day window. The
	// limit is anchored at midnight so the boundary date is rejected no
	// matter what time of day the request arrives.
	n := s.now()
	limit := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, dayFirstInstallment.Location()).AddDate(0, 3, 0)
	if dayFirstInstallment.Before(limit) {
		return nil
	}
	return apperrors.NewBusinessRuleError("Invalid Date")
}
