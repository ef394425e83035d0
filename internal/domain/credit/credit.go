package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/customer"
)

// MaxInstallments caps how many repayment events a single credit may define.
const MaxInstallments = 48

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusPaidOff    Status = "PAID_OFF"
	StatusDefaulted  Status = "DEFAULTED"
)

type Credit struct {
	ID                  int64              `json:"id"`
	CreditCode          uuid.UUID          `json:"creditCode"`
	CreditValue         decimal.Decimal    `json:"creditValue"`
	DayFirstInstallment time.Time          `json:"dayFirstInstallment"`
	NumberOfInstallment int                `json:"numberOfInstallment"`
	Status              Status             `json:"status"`
	CustomerID          int64              `json:"customerId"`
	Customer            *customer.Customer `json:"-"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

// NewCredit builds an issuance candidate. The customer reference is id-only at
// this point; the service resolves it to a full record before persistence.
func NewCredit(value decimal.Decimal, dayFirstInstallment time.Time, numberOfInstallment int, customerID int64) *Credit {
	return &Credit{
		CreditValue:         value,
		DayFirstInstallment: dayFirstInstallment,
		NumberOfInstallment: numberOfInstallment,
		CustomerID:          customerID,
	}
}
