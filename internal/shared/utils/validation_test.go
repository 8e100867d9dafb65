package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/errors"
)

type registerPayload struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		err := ValidateStruct(registerPayload{Email: "a@b.io", Password: "secret1", FirstName: "Ann"})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := ValidateStruct(registerPayload{Email: "nope", Password: "123"})
		require.Error(t, err)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		assert.Contains(t, appErr.Details, "email must be a valid email address")
		assert.Contains(t, appErr.Details, "password must be at least 6 characters long")
		assert.Contains(t, appErr.Details, "firstName is required")
	})
}

func TestBindError(t *testing.T) {
	assert.Nil(t, BindError(nil))

	err := BindError(assert.AnError)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Invalid request body", appErr.Message)
}
