package credit

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("credit not found")

// Repository persists credits. Create fails atomically if the generated
// credit code collides with an existing one; no partial write is observable.
type Repository interface {
	Create(ctx context.Context, credit *Credit) (*Credit, error)

	FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*Credit, error)

	FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error)
}
