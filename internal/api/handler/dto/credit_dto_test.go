package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/domain/customer"
)

func validCreateCreditRequest() CreateCreditRequest {
	value := decimal.NewFromInt(100000)
	return CreateCreditRequest{
		CreditValue:           &value,
		DayFirstOfInstallment: time.Now().AddDate(0, 2, 0).Format(dateLayout),
		NumberOfInstallment:   15,
		CustomerID:            1,
	}
}

func TestCreateCreditRequestValidate(t *testing.T) {
	req := validCreateCreditRequest()
	assert.Empty(t, req.Validate())
}

func TestCreateCreditRequestValidateRejectsBadDate(t *testing.T) {
	req := validCreateCreditRequest()
	req.DayFirstOfInstallment = "22/04/2025"

	errs := req.Validate()
	assert.Equal(t, "invalid date format (use YYYY-MM-DD)", errs["dayFirstOfInstallment"])
}

func TestCreateCreditRequestValidateRejectsPastDate(t *testing.T) {
	req := validCreateCreditRequest()
	req.DayFirstOfInstallment = "2020-01-01"

	errs := req.Validate()
	assert.Equal(t, "Date must be in the future", errs["dayFirstOfInstallment"])
}

func TestCreateCreditRequestValidateRejectsTooManyInstallments(t *testing.T) {
	req := validCreateCreditRequest()
	req.NumberOfInstallment = 49

	errs := req.Validate()
	assert.Equal(t, "Number of installment should be max of 48", errs["numberOfInstallment"])
}

func TestCreateCreditRequestValidateRejectsMissingValueAndCustomer(t *testing.T) {
	req := validCreateCreditRequest()
	req.CreditValue = nil
	req.CustomerID = 0

	errs := req.Validate()
	assert.Equal(t, "creditValue is required", errs["creditValue"])
	assert.Equal(t, "customerId must be a positive number", errs["customerId"])
}

func TestCreateCreditRequestToDomain(t *testing.T) {
	req := validCreateCreditRequest()
	cred := req.ToDomain()

	assert.True(t, cred.CreditValue.Equal(*req.CreditValue))
	assert.Equal(t, req.DayFirstOfInstallment, cred.DayFirstInstallment.Format(dateLayout))
	assert.Equal(t, 15, cred.NumberOfInstallment)
	assert.Equal(t, int64(1), cred.CustomerID)
}

func TestNewCreditView(t *testing.T) {
	cred := &credit.Credit{
		CreditCode:          uuid.New(),
		CreditValue:         decimal.NewFromInt(100000),
		NumberOfInstallment: 15,
		Status:              credit.StatusInProgress,
		Customer: &customer.Customer{
			Email:  "camila@email.com",
			Income: decimal.NewFromInt(1000),
		},
	}

	view := NewCreditView(cred)
	assert.Equal(t, cred.CreditCode, view.CreditCode)
	assert.Equal(t, "IN_PROGRESS", view.Status)
	assert.Equal(t, "camila@email.com", view.EmailCustomer)
	assert.True(t, view.IncomeCustomer.Equal(decimal.NewFromInt(1000)))
}

func TestNewCreditViewWithoutOwner(t *testing.T) {
	cred := &credit.Credit{CreditCode: uuid.New(), Status: credit.StatusInProgress}

	view := NewCreditView(cred)
	assert.Empty(t, view.EmailCustomer)
	assert.True(t, view.IncomeCustomer.IsZero())
}
