package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	Phone    string `validate:"required,phone"`
	Password string `validate:"required,min=8,strongpassword"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   profile
		invalid map[string]string
	}{
		{name: "valid", input: profile{Phone: "+7 (900) 123-45-67", Password: "Secret123"}},
		{name: "compact phone", input: profile{Phone: "+79001234567", Password: "Secret123"}},
		{name: "foreign phone", input: profile{Phone: "+1 555 123 4567", Password: "Secret123"}, invalid: map[string]string{"phone": "phone"}},
		{name: "weak password", input: profile{Phone: "+79001234567", Password: "secret123"}, invalid: map[string]string{"password": "strongpassword"}},
		{name: "missing fields", input: profile{}, invalid: map[string]string{"phone": "required", "password": "required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.invalid == nil {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.invalid, FieldErrors(err))
		})
	}
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
