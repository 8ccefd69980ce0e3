package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeDetailsInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Handle   string `json:"handle" validate:"required,handle"`
	Currency string `json:"currency" validate:"required,currency"`
	Country  string `json:"country" validate:"required,country"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      storeDetailsInput
		wantFields []string
	}{
		{
			name:  "valid input",
			input: storeDetailsInput{Name: "My Shop", Handle: "@my-shop", Currency: "USD", Country: "US"},
		},
		{
			name:       "handle without prefix",
			input:      storeDetailsInput{Name: "My Shop", Handle: "my-shop", Currency: "USD", Country: "US"},
			wantFields: []string{"handle"},
		},
		{
			name:       "handle with underscore",
			input:      storeDetailsInput{Name: "My Shop", Handle: "@my_shop", Currency: "USD", Country: "US"},
			wantFields: []string{"handle"},
		},
		{
			name:       "lowercase currency",
			input:      storeDetailsInput{Name: "My Shop", Handle: "@my-shop", Currency: "usd", Country: "US"},
			wantFields: []string{"currency"},
		},
		{
			name:       "country too long",
			input:      storeDetailsInput{Name: "My Shop", Handle: "@my-shop", Currency: "USD", Country: "USA"},
			wantFields: []string{"country"},
		},
		{
			name:       "name too short",
			input:      storeDetailsInput{Name: "X", Handle: "@my-shop", Currency: "USD", Country: "US"},
			wantFields: []string{"name"},
		},
		{
			name:       "multiple failures",
			input:      storeDetailsInput{Name: "", Handle: "@", Currency: "", Country: ""},
			wantFields: []string{"name", "handle", "currency", "country"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			for _, field := range tt.wantFields {
				assert.Contains(t, vErr.Errors, field)
			}
		})
	}
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(storeDetailsInput{Name: "My Shop", Handle: "bad", Currency: "USD", Country: "US"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	// error keys come from the json tags, not the Go field names
	assert.Contains(t, vErr.Errors, "handle")
	assert.NotContains(t, vErr.Errors, "Handle")
}

func TestIsValidHandle(t *testing.T) {
	assert.True(t, IsValidHandle("@my-shop"))
	assert.True(t, IsValidHandle("@Shop123"))
	assert.False(t, IsValidHandle("my-shop"))
	assert.False(t, IsValidHandle("@"))
	assert.False(t, IsValidHandle("@my shop"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("merchant@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("a60b2f3e-98e9-4a9f-8f4c-24c171a0d1a5"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}
