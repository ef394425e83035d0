package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-engine/internal/event"
	"credit-engine/internal/infrastructure/monitoring"
	"credit-engine/internal/pkg/apperrors"
)

const customerNotFound = "Customer not found by repository"

type CustomerService interface {
	Register(ctx context.Context, candidate *Customer) (*Customer, error)
	GetByID(ctx context.Context, customerID int64) (*Customer, error)
	Update(ctx context.Context, customerID int64, patch Patch) (*Customer, error)
	Delete(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.Publisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, pub event.Publisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}
	if pub == nil {
		pub = event.NoopPublisher{}
	}
	return &customerService{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func (s *customerService) Register(ctx context.Context, candidate *Customer) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to register new customer", slog.String("email", candidate.Email))

	// Uniqueness of cpf/email is not pre-checked: the repository save is the
	// single atomic point of truth and reports conflicts after the fact.
	if err := s.repo.Save(ctx, candidate); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			s.logger.WarnContext(ctx, "Unique constraint conflict registering customer", slog.Any("error", err))
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	monitoring.Business.CustomersRegisteredTotal.Inc()
	s.logger.InfoContext(ctx, "Successfully registered customer", slog.Int64("customerID", candidate.ID))

	registered := event.CustomerRegisteredEvent{
		Timestamp: time.Now(),
		Payload: event.CustomerPayload{
			CustomerID: candidate.ID,
			FirstName:  candidate.FirstName,
			LastName:   candidate.LastName,
			Email:      candidate.Email,
		},
	}
	if pubErr := s.pub.PublishCustomerRegistered(ctx, registered); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer registered, but FAILED to publish registration event", slog.Any("error", pubErr))
	}

	return candidate, nil
}

func (s *customerService) GetByID(ctx context.Context, customerID int64) (*Customer, error) {
	s.logger.DebugContext(ctx, "Attempting to find customer by ID", slog.Int64("customerID", customerID))

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", customerID))
			return nil, fmt.Errorf("%w: Id %d not found", apperrors.ErrNotFound, customerID)
		}
		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to find customer %d: %w", customerID, err)
	}

	return cust, nil
}

func (s *customerService) Update(ctx context.Context, customerID int64, patch Patch) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", customerID))

	cust, err := s.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cust.Apply(patch)

	if err := s.repo.Save(ctx, cust); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save updated customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to update customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully updated customer", slog.Int64("customerID", customerID))
	return cust, nil
}

func (s *customerService) Delete(ctx context.Context, customerID int64) error {
	s.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	if _, err := s.GetByID(ctx, customerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.logger.WarnContext(ctx, "Cannot delete customer that still owns credits", slog.Int64("customerID", customerID))
			return fmt.Errorf("%w: %w", err, ErrHasCredits)
		}
		s.logger.ErrorContext(ctx, "Repository failed to delete customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}

	s.logger.InfoContext(ctx, "Successfully deleted customer", slog.Int64("customerID", customerID))
	return nil
}
