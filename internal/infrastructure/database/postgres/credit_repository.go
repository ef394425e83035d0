package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
	"credit-engine/internal/infrastructure/monitoring"
	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pashagolub/pgxmock/v4"
)

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

var _ DBPool = (pgxmock.PgxPoolIface)(nil)

var errMsgFormat = "%w: %w"

type CreditRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ credit.Repository = (*CreditRepository)(nil)

func NewCreditRepository(db DBPool, logger *slog.Logger) *CreditRepository {
	return &CreditRepository{db: db, logger: logger.With("component", "CreditRepository")}
}

func (r *CreditRepository) Create(ctx context.Context, cred *credit.Credit) (*credit.Credit, error) {
	if cred == nil || cred.Customer == nil {
		return nil, fmt.Errorf("%w: credit must carry a resolved customer", apperrors.ErrInvalidArgument)
	}

	query := `
        INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installment, status, customer_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	start := time.Now()
	err := r.db.QueryRow(ctx, query,
		cred.CreditCode,
		cred.CreditValue,
		cred.DayFirstInstallment,
		cred.NumberOfInstallment,
		cred.Status,
		cred.CustomerID,
	).Scan(
		&cred.ID,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	)
	monitoring.RecordDBQuery("credit_insert", queryStatus(err), time.Since(start))

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Credit code collision on insert", slog.Any("error", err))
			return nil, translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert credit", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to insert credit: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Credit created in DB", slog.Int64("creditID", cred.ID))
	return cred, nil
}

func (r *CreditRepository) FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*credit.Credit, error) {
	r.logger.DebugContext(ctx, "Attempting to find credit by code", slog.String("creditCode", creditCode.String()))

	query := `
        SELECT cr.id, cr.credit_code, cr.credit_value, cr.day_first_installment, cr.number_of_installment,
               cr.status, cr.customer_id, cr.created_at, cr.updated_at,
               cu.id, cu.first_name, cu.last_name, cu.cpf, cu.income, cu.email, cu.zip_code, cu.street
        FROM credits cr
        JOIN customers cu ON cu.id = cr.customer_id
        WHERE cr.credit_code = $1`

	var cred credit.Credit
	var owner customer.Customer
	start := time.Now()
	err := r.db.QueryRow(ctx, query, creditCode).Scan(
		&cred.ID,
		&cred.CreditCode,
		&cred.CreditValue,
		&cred.DayFirstInstallment,
		&cred.NumberOfInstallment,
		&cred.Status,
		&cred.CustomerID,
		&cred.CreatedAt,
		&cred.UpdatedAt,
		&owner.ID,
		&owner.FirstName,
		&owner.LastName,
		&owner.CPF,
		&owner.Income,
		&owner.Email,
		&owner.Address.ZipCode,
		&owner.Address.Street,
	)
	monitoring.RecordDBQuery("credit_find_by_code", queryStatus(err), time.Since(start))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, credit.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to find credit by code", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to find credit: %w", apperrors.ErrDatabase, err)
	}

	cred.Customer = &owner
	return &cred, nil
}

func (r *CreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	r.logger.DebugContext(ctx, "Attempting to list credits by customer", slog.Int64("customerID", customerID))

	query := `
        SELECT id, credit_code, credit_value, day_first_installment, number_of_installment, status, customer_id, created_at, updated_at
        FROM credits
        WHERE customer_id = $1`

	start := time.Now()
	rows, err := r.db.Query(ctx, query, customerID)
	monitoring.RecordDBQuery("credit_list_by_customer", queryStatus(err), time.Since(start))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query credits by customer", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query credits: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	credits := make([]*credit.Credit, 0)
	for rows.Next() {
		var cred credit.Credit
		if err := rows.Scan(
			&cred.ID,
			&cred.CreditCode,
			&cred.CreditValue,
			&cred.DayFirstInstallment,
			&cred.NumberOfInstallment,
			&cred.Status,
			&cred.CustomerID,
			&cred.CreatedAt,
			&cred.UpdatedAt,
		); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan credit row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed scanning credit: %w", apperrors.ErrDatabase, err)
		}
		credits = append(credits, &cred)
	}

	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating credit rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating credits: %w", apperrors.ErrDatabase, err)
	}

	return credits, nil
}

func queryStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		case "23503":
			contextLogger.Warn("Database foreign key violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
