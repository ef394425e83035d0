package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerPayload struct {
	CustomerID int64  `json:"customerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
}

type CustomerRegisteredEvent struct {
	Timestamp time.Time       `json:"timestamp"`
	Payload   CustomerPayload `json:"payload"`
}

type CreditPayload struct {
	CreditID            int64           `json:"creditId"`
	CreditCode          uuid.UUID       `json:"creditCode"`
	CreditValue         decimal.Decimal `json:"creditValue"`
	NumberOfInstallment int             `json:"numberOfInstallment"`
	CustomerID          int64           `json:"customerId"`
}

type CreditIssuedEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Payload   CreditPayload `json:"payload"`
}

type Publisher interface {
	PublishCustomerRegistered(ctx context.Context, event CustomerRegisteredEvent) error
	PublishCreditIssued(ctx context.Context, event CreditIssuedEvent) error
}

// NoopPublisher is used when messaging is disabled in configuration.
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

func (NoopPublisher) PublishCustomerRegistered(context.Context, CustomerRegisteredEvent) error {
	return nil
}

func (NoopPublisher) PublishCreditIssued(context.Context, CreditIssuedEvent) error {
	return nil
}
