package customer

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("customer not found")

	ErrHasCredits = errors.New("customer still owns credits")
)

// CustomerRepository persists customers. Save fails atomically when a unique
// constraint (cpf, email) is violated; no partial write is observable.
type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	Delete(ctx context.Context, customerID int64) error
}
