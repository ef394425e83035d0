package dto

import (
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/customer"
)

type CreateCustomerRequest struct {
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	CPF       string           `json:"cpf"`
	Income    *decimal.Decimal `json:"income"`
	Email     string           `json:"email"`
	Password  string           `json:"password"`
	ZipCode   string           `json:"zipCode"`
	Street    string           `json:"street"`
}

func (r *CreateCustomerRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(r.FirstName) == "" {
		errs["firstName"] = "firstName must not be empty"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["lastName"] = "lastName must not be empty"
	}
	if strings.TrimSpace(r.CPF) == "" {
		errs["cpf"] = "cpf must not be empty"
	} else if !ValidCPF(r.CPF) {
		errs["cpf"] = "invalid CPF"
	}
	if r.Income == nil {
		errs["income"] = "income is required"
	} else if r.Income.IsNegative() {
		errs["income"] = "income must not be negative"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "email must not be empty"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs["email"] = "Invalid email"
	}
	if r.Password == "" {
		errs["password"] = "password must not be empty"
	}
	if strings.TrimSpace(r.ZipCode) == "" {
		errs["zipCode"] = "zipCode must not be empty"
	}
	if strings.TrimSpace(r.Street) == "" {
		errs["street"] = "street must not be empty"
	}

	return errs
}

func (r *CreateCustomerRequest) ToDomain() *customer.Customer {
	return customer.NewCustomer(
		r.FirstName,
		r.LastName,
		r.CPF,
		*r.Income,
		r.Email,
		r.Password,
		r.ZipCode,
		r.Street,
	)
}

type UpdateCustomerRequest struct {
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Income    *decimal.Decimal `json:"income"`
	ZipCode   string           `json:"zipCode"`
	Street    string           `json:"street"`
}

func (r *UpdateCustomerRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(r.FirstName) == "" {
		errs["firstName"] = "firstName must not be empty"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["lastName"] = "lastName must not be empty"
	}
	if r.Income == nil {
		errs["income"] = "income is required"
	} else if r.Income.IsNegative() {
		errs["income"] = "income must not be negative"
	}
	if strings.TrimSpace(r.ZipCode) == "" {
		errs["zipCode"] = "zipCode must not be empty"
	}
	if strings.TrimSpace(r.Street) == "" {
		errs["street"] = "street must not be empty"
	}

	return errs
}

func (r *UpdateCustomerRequest) ToPatch() customer.Patch {
	return customer.Patch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Income:    *r.Income,
		ZipCode:   r.ZipCode,
		Street:    r.Street,
	}
}

type CustomerView struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	CPF       string          `json:"cpf"`
	Income    decimal.Decimal `json:"income"`
	Email     string          `json:"email"`
	ZipCode   string          `json:"zipCode"`
	Street    string          `json:"street"`
}

func NewCustomerView(cust *customer.Customer) CustomerView {
	if cust == nil {
		return CustomerView{}
	}
	return CustomerView{
		ID:        cust.ID,
		FirstName: cust.FirstName,
		LastName:  cust.LastName,
		CPF:       cust.CPF,
		Income:    cust.Income,
		Email:     cust.Email,
		ZipCode:   cust.Address.ZipCode,
		Street:    cust.Address.Street,
	}
}

// ValidCPF checks the two verification digits of a Brazilian CPF. Accepts the
// number with or without the usual punctuation.
func ValidCPF(cpf string) bool {
	digits := make([]int, 0, 11)
	for _, r := range cpf {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-' || r == ' ':
		default:
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return digits[9] == cpfCheckDigit(digits[:9]) && digits[10] == cpfCheckDigit(digits[:10])
}

func cpfCheckDigit(digits []int) int {
	weight := len(digits) + 1
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
