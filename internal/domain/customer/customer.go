package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	ZipCode string `json:"zipCode"`
	Street  string `json:"street"`
}

type Customer struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	CPF       string          `json:"cpf"`
	Income    decimal.Decimal `json:"income"`
	Email     string          `json:"email"`
	Password  string          `json:"-"`
	Address   Address         `json:"address"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func NewCustomer(firstName, lastName, cpf string, income decimal.Decimal, email, password, zipCode, street string) *Customer {
	now := time.Now()
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		CPF:       cpf,
		Income:    income,
		Email:     email,
		Password:  password,
		Address: Address{
			ZipCode: zipCode,
			Street:  street,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Patch carries the mutable subset of a customer. CPF, email and password
// cannot be changed through an update.
type Patch struct {
	FirstName string
	LastName  string
	Income    decimal.Decimal
	ZipCode   string
	Street    string
}

func (c *Customer) Apply(p Patch) {
	c.FirstName = p.FirstName
	c.LastName = p.LastName
	c.Income = p.Income
	c.Address.ZipCode = p.ZipCode
	c.Address.Street = p.Street
	c.UpdatedAt = time.Now()
}
