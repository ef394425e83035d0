package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "cpf", Message: "invalid CPF"}
	assert.Equal(t, "validation failed for field 'cpf': invalid CPF", err.Error())

	err = &ValidationError{Message: "body required"}
	assert.Equal(t, "validation failed: body required", err.Error())
}

func TestNewValidationErrorWrapsSentinel(t *testing.T) {
	err := NewValidationError("email", "Invalid email")

	assert.True(t, errors.Is(err, ErrValidation))

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
	assert.Equal(t, "Invalid email", ve.Message)
}

func TestNewBusinessRuleErrorWrapsSentinel(t *testing.T) {
	err := NewBusinessRuleError("Invalid Date")

	assert.True(t, errors.Is(err, ErrBusinessRule))
	assert.Contains(t, err.Error(), "Invalid Date")
}

func TestAppErrorFormatting(t *testing.T) {
	err := &AppError{Code: "DB_ERROR", Message: "insert failed"}
	assert.Equal(t, "[DB_ERROR] insert failed", err.Error())

	err = &AppError{Message: "no code"}
	assert.Equal(t, "no code", err.Error())
}

func TestWrapDatabaseError(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapDatabaseError(cause, "saving customer")

	assert.True(t, errors.Is(err, ErrDatabase))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "saving customer")
}
