package postgres

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"credit-engine/internal/domain/customer"
	"credit-engine/internal/pkg/apperrors"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

const pgxmockExpectationsNotMetMsg = "pgxmock expectations were not met"

func newStoredCustomer() *customer.Customer {
	return &customer.Customer{
		ID:        1,
		FirstName: "Cami",
		LastName:  "Cavalcante",
		CPF:       "28475934625",
		Income:    decimal.NewFromInt(1000),
		Email:     "camila@email.com",
		Password:  "1234",
		Address: customer.Address{
			ZipCode: "000000",
			Street:  "Rua da Cami",
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func setupCustomerRepo(t *testing.T) (context.Context, *CustomerRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewCustomerRepository(mockPool, logger)

	return ctx, repo, mockPool
}

const insertCustomerQuery = `
        INSERT INTO customers (first_name, last_name, cpf, income, email, password, zip_code, street, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
        RETURNING id, created_at, updated_at`

func TestSaveNewCustomerWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	cust := newStoredCustomer()
	cust.ID = 0

	mockPool.ExpectQuery(regexp.QuoteMeta(insertCustomerQuery)).WithArgs(
		cust.FirstName,
		cust.LastName,
		cust.CPF,
		cust.Income,
		cust.Email,
		cust.Password,
		cust.Address.ZipCode,
		cust.Address.Street,
	).WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
		AddRow(int64(1), time.Now(), time.Now()))

	err := repo.Save(ctx, cust)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), cust.ID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveNewCustomerWhenCPFTaken(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	cust := newStoredCustomer()
	cust.ID = 0

	mockPool.ExpectQuery(regexp.QuoteMeta(insertCustomerQuery)).WithArgs(
		cust.FirstName,
		cust.LastName,
		cust.CPF,
		cust.Income,
		cust.Email,
		cust.Password,
		cust.Address.ZipCode,
		cust.Address.Street,
	).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "customers_cpf_key"})

	err := repo.Save(ctx, cust)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveExistingCustomerWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	cust := newStoredCustomer()

	query := `
        UPDATE customers
        SET first_name = $1,
            last_name = $2,
            income = $3,
            zip_code = $4,
            street = $5,
            updated_at = NOW()
        WHERE id = $6`

	mockPool.ExpectExec(regexp.QuoteMeta(query)).WithArgs(
		cust.FirstName,
		cust.LastName,
		cust.Income,
		cust.Address.ZipCode,
		cust.Address.Street,
		cust.ID,
	).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Save(ctx, cust)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveExistingCustomerWhenGone(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	cust := newStoredCustomer()

	mockPool.ExpectExec("UPDATE customers").WithArgs(
		cust.FirstName,
		cust.LastName,
		cust.Income,
		cust.Address.ZipCode,
		cust.Address.Street,
		cust.ID,
	).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Save(ctx, cust)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCustomerByIDReturnOne(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	cust := newStoredCustomer()

	query := `
        SELECT id, first_name, last_name, cpf, income, email, password, zip_code, street, created_at, updated_at
        FROM customers
        WHERE id = $1`

	mockPool.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(cust.ID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name", "cpf", "income", "email", "password", "zip_code", "street", "created_at", "updated_at"}).
			AddRow(cust.ID, cust.FirstName, cust.LastName, cust.CPF, cust.Income, cust.Email, cust.Password,
				cust.Address.ZipCode, cust.Address.Street, cust.CreatedAt, cust.UpdatedAt))

	result, err := repo.FindByID(ctx, cust.ID)
	assert.NoError(t, err)
	assert.Equal(t, cust.ID, result.ID)
	assert.Equal(t, cust.CPF, result.CPF)
	assert.Equal(t, cust.Address.Street, result.Address.Street)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCustomerByIDReturnNone(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT (.+) FROM customers").WithArgs(int64(42)).WillReturnError(pgx.ErrNoRows)

	result, err := repo.FindByID(ctx, 42)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, customer.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteCustomerWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec(regexp.QuoteMeta(`DELETE FROM customers WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(ctx, 1)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteCustomerWhenReferencedByCredits(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec(regexp.QuoteMeta(`DELETE FROM customers WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "credits_customer_id_fkey"})

	err := repo.Delete(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteCustomerWhenGone(t *testing.T) {
	ctx, repo, mockPool := setupCustomerRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec(regexp.QuoteMeta(`DELETE FROM customers WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
