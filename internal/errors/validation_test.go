package errors

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Key        string `validate:"required,max=255"`
	Value      string `validate:"required"`
	LanguageID uint   `validate:"required"`
	Email      string `validate:"omitempty,email"`
	Password   string `validate:"omitempty,min=8"`
}

func TestBindingErrorFields(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name       string
		input      sampleRequest
		wantFields []string
	}{
		{
			name:       "All required missing",
			input:      sampleRequest{},
			wantFields: []string{"key", "value", "language_id"},
		},
		{
			name: "Invalid email",
			input: sampleRequest{
				Key: "k", Value: "v", LanguageID: 1,
				Email: "not-an-email",
			},
			wantFields: []string{"email"},
		},
		{
			name: "Short password",
			input: sampleRequest{
				Key: "k", Value: "v", LanguageID: 1,
				Password: "short",
			},
			wantFields: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			require.Error(t, err)

			fields := BindingErrorFields(err)
			assert.Len(t, fields, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, fields, field)
				assert.NotEmpty(t, fields[field])
			}
		})
	}
}

func TestBindingErrorFields_NonValidatorError(t *testing.T) {
	fields := BindingErrorFields(errors.New("unexpected EOF"))
	require.Len(t, fields, 1)
	assert.Contains(t, fields, "body")
}

func TestJSONFieldName_ConsecutiveCapitals(t *testing.T) {
	validate := validator.New()

	// LanguageID must map to language_id, not language_i_d
	err := validate.Struct(sampleRequest{Key: "k", Value: "v"})
	require.Error(t, err)

	fields := BindingErrorFields(err)
	assert.Contains(t, fields, "language_id")
	assert.NotContains(t, fields, "language_i_d")
}
