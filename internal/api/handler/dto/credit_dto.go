package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/credit"
)

var dateLayout = time.RFC3339[:10]

type CreateCreditRequest struct {
	CreditValue           *decimal.Decimal `json:"creditValue"`
	DayFirstOfInstallment string           `json:"dayFirstOfInstallment"`
	NumberOfInstallment   int              `json:"numberOfInstallment"`
	CustomerID            int64            `json:"customerId"`
}

func (r *CreateCreditRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if r.CreditValue == nil {
		errs["creditValue"] = "creditValue is required"
	} else if r.CreditValue.IsNegative() {
		errs["creditValue"] = "creditValue must not be negative"
	}
	if day, err := time.Parse(dateLayout, r.DayFirstOfInstallment); err != nil {
		errs["dayFirstOfInstallment"] = "invalid date format (use YYYY-MM-DD)"
	} else if !day.After(time.Now()) {
		errs["dayFirstOfInstallment"] = "Date must be in the future"
	}
	if r.NumberOfInstallment <= 0 {
		errs["numberOfInstallment"] = "numberOfInstallment must be positive"
	} else if r.NumberOfInstallment > credit.MaxInstallments {
		errs["numberOfInstallment"] = "Number of installment should be max of 48"
	}
	if r.CustomerID <= 0 {
		errs["customerId"] = "customerId must be a positive number"
	}

	return errs
}

func (r *CreateCreditRequest) ToDomain() *credit.Credit {
	day, _ := time.Parse(dateLayout, r.DayFirstOfInstallment)
	return credit.NewCredit(*r.CreditValue, day, r.NumberOfInstallment, r.CustomerID)
}

// CreditView is the full representation returned on issuance and single-credit
// lookup, carrying the owner's email and income alongside the credit itself.
type CreditView struct {
	CreditCode          uuid.UUID       `json:"creditCode"`
	CreditValue         decimal.Decimal `json:"creditValue"`
	NumberOfInstallment int             `json:"numberOfInstallment"`
	Status              string          `json:"status"`
	EmailCustomer       string          `json:"emailCustomer"`
	IncomeCustomer      decimal.Decimal `json:"incomeCustomer"`
}

func NewCreditView(cred *credit.Credit) CreditView {
	view := CreditView{
		CreditCode:          cred.CreditCode,
		CreditValue:         cred.CreditValue,
		NumberOfInstallment: cred.NumberOfInstallment,
		Status:              string(cred.Status),
	}
	if cred.Customer != nil {
		view.EmailCustomer = cred.Customer.Email
		view.IncomeCustomer = cred.Customer.Income
	}
	return view
}

type CreditViewList struct {
	CreditCode          uuid.UUID       `json:"creditCode"`
	CreditValue         decimal.Decimal `json:"creditValue"`
	NumberOfInstallment int             `json:"numberOfInstallment"`
}

func NewCreditViewList(cred *credit.Credit) CreditViewList {
	return CreditViewList{
		CreditCode:          cred.CreditCode,
		CreditValue:         cred.CreditValue,
		NumberOfInstallment: cred.NumberOfInstallment,
	}
}

type TokenRequest struct {
	Username string `json:"username"`
}
