package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCreateCustomerRequest() CreateCustomerRequest {
	income := decimal.NewFromInt(1000)
	return CreateCustomerRequest{
		FirstName: "Cami",
		LastName:  "Cavalcante",
		CPF:       "28475934625",
		Income:    &income,
		Email:     "camila@email.com",
		Password:  "1234",
		ZipCode:   "000000",
		Street:    "Rua da Cami",
	}
}

func TestCreateCustomerRequestValidate(t *testing.T) {
	req := validCreateCustomerRequest()
	assert.Empty(t, req.Validate())
}

func TestCreateCustomerRequestValidateCollectsAllFields(t *testing.T) {
	req := CreateCustomerRequest{}
	errs := req.Validate()

	assert.Len(t, errs, 8)
	assert.Equal(t, "firstName must not be empty", errs["firstName"])
	assert.Equal(t, "income is required", errs["income"])
	assert.Equal(t, "password must not be empty", errs["password"])
}

func TestCreateCustomerRequestValidateRejectsBadEmail(t *testing.T) {
	req := validCreateCustomerRequest()
	req.Email = "not-an-email"

	errs := req.Validate()
	assert.Equal(t, "Invalid email", errs["email"])
}

func TestCreateCustomerRequestValidateRejectsNegativeIncome(t *testing.T) {
	req := validCreateCustomerRequest()
	negative := decimal.NewFromInt(-1)
	req.Income = &negative

	errs := req.Validate()
	assert.Equal(t, "income must not be negative", errs["income"])
}

func TestCreateCustomerRequestToDomain(t *testing.T) {
	req := validCreateCustomerRequest()
	cust := req.ToDomain()

	assert.Equal(t, req.FirstName, cust.FirstName)
	assert.Equal(t, req.CPF, cust.CPF)
	assert.True(t, cust.Income.Equal(*req.Income))
	assert.Equal(t, req.ZipCode, cust.Address.ZipCode)
	assert.Equal(t, req.Street, cust.Address.Street)
}

func TestUpdateCustomerRequestToPatch(t *testing.T) {
	income := decimal.NewFromInt(5000)
	req := UpdateCustomerRequest{
		FirstName: "CamiUpdate",
		LastName:  "CavalcanteUpdate",
		Income:    &income,
		ZipCode:   "45656",
		Street:    "Rua Updated",
	}

	assert.Empty(t, req.Validate())

	patch := req.ToPatch()
	assert.Equal(t, "CamiUpdate", patch.FirstName)
	assert.True(t, patch.Income.Equal(income))
	assert.Equal(t, "45656", patch.ZipCode)
}

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"valid bare digits", "52998224725", true},
		{"valid punctuated", "529.982.247-25", true},
		{"valid another", "28475934625", true},
		{"repeated digits", "111.111.111-11", false},
		{"wrong check digit", "529.982.247-26", false},
		{"too short", "5299822472", false},
		{"too long", "529982247255", false},
		{"letters", "529982247aa", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCPF(tt.cpf))
		})
	}
}
