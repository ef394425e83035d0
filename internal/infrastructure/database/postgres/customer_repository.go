package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/infrastructure/monitoring"
	"credit-engine/internal/pkg/apperrors"
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if cust.ID == 0 {
		return r.createCustomer(ctx, cust)
	}
	return r.updateCustomer(ctx, cust)
}

func (r *CustomerRepository) createCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("email", cust.Email))

	query := `
        INSERT INTO customers (first_name, last_name, cpf, income, email, password, zip_code, street, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	start := time.Now()
	err := r.db.QueryRow(ctx, query,
		cust.FirstName,
		cust.LastName,
		cust.CPF,
		cust.Income,
		cust.Email,
		cust.Password,
		cust.Address.ZipCode,
		cust.Address.Street,
	).Scan(
		&cust.ID,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	monitoring.RecordDBQuery("customer_insert", queryStatus(err), time.Since(start))

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert customer due to unique constraint violation", slog.Any("error", err))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.ID))
	return nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", cust.ID))

	query := `
        UPDATE customers
        SET first_name = $1,
            last_name = $2,
            income = $3,
            zip_code = $4,
            street = $5,
            updated_at = NOW()
        WHERE id = $6`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query,
		cust.FirstName,
		cust.LastName,
		cust.Income,
		cust.Address.ZipCode,
		cust.Address.Street,
		cust.ID,
	)
	monitoring.RecordDBQuery("customer_update", queryStatus(err), time.Since(start))

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	r.logger.DebugContext(ctx, "Attempting to find customer by ID", slog.Int64("customerID", customerID))

	query := `
        SELECT id, first_name, last_name, cpf, income, email, password, zip_code, street, created_at, updated_at
        FROM customers
        WHERE id = $1`

	var cust customer.Customer
	start := time.Now()
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&cust.ID,
		&cust.FirstName,
		&cust.LastName,
		&cust.CPF,
		&cust.Income,
		&cust.Email,
		&cust.Password,
		&cust.Address.ZipCode,
		&cust.Address.Street,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	monitoring.RecordDBQuery("customer_find_by_id", queryStatus(err), time.Since(start))

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrNotFound) {
			return nil, customer.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to find customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to find customer: %w", apperrors.ErrDatabase, err)
	}

	return &cust, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	query := `DELETE FROM customers WHERE id = $1`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query, customerID)
	monitoring.RecordDBQuery("customer_delete", queryStatus(err), time.Since(start))

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrConflict) {
			r.logger.WarnContext(ctx, "Customer deletion blocked by referencing credits", slog.Int64("customerID", customerID))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to delete customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer deleted successfully")
	return nil
}
