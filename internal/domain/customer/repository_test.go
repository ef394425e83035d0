package customer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Save(ctx context.Context, cust *Customer) error {
	args := m.Called(ctx, cust)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	args := m.Called(ctx, customerID)
	var cust *Customer
	if args.Get(0) != nil {
		cust = args.Get(0).(*Customer)
	}
	return cust, args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}
