package credit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCredit(t *testing.T) {
	day := time.Now().AddDate(0, 1, 0)
	cred := NewCredit(decimal.NewFromInt(100000), day, 15, 1)

	assert.Zero(t, cred.ID)
	assert.Equal(t, uuid.Nil, cred.CreditCode)
	assert.True(t, cred.CreditValue.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, day, cred.DayFirstInstallment)
	assert.Equal(t, 15, cred.NumberOfInstallment)
	assert.Equal(t, int64(1), cred.CustomerID)
	assert.Empty(t, cred.Status)
	assert.Nil(t, cred.Customer)
}
