package credit

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, cred *Credit) (*Credit, error) {
	args := m.Called(ctx, cred)
	var created *Credit
	if args.Get(0) != nil {
		created = args.Get(0).(*Credit)
	}
	return created, args.Error(1)
}

func (m *MockRepository) FindByCreditCode(ctx context.Context, creditCode uuid.UUID) (*Credit, error) {
	args := m.Called(ctx, creditCode)
	var found *Credit
	if args.Get(0) != nil {
		found = args.Get(0).(*Credit)
	}
	return found, args.Error(1)
}

func (m *MockRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error) {
	args := m.Called(ctx, customerID)
	var credits []*Credit
	if args.Get(0) != nil {
		credits = args.Get(0).([]*Credit)
	}
	return credits, args.Error(1)
}
