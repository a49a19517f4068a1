package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testForm struct {
	Title    string `form:"title" validate:"required"`
	URL      string `form:"url" validate:"required"`
	Category string `form:"category" validate:"required"`
	Note     string `json:"note" validate:"max=5"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      interface{}
		wantFields []string
	}{
		{
			name:  "valid form",
			input: testForm{Title: "T", URL: "http://x", Category: "tech"},
		},
		{
			name:       "missing required fields",
			input:      testForm{Title: "T"},
			wantFields: []string{"category", "url"},
		},
		{
			name:  "whitespace counts as provided",
			input: testForm{Title: "   ", URL: "http://x", Category: "tech"},
		},
		{
			name:       "json tag names are used when no form tag",
			input:      testForm{Title: "T", URL: "http://x", Category: "tech", Note: "too long"},
			wantFields: []string{"note"},
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
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tt.wantFields, validationErr.Fields())
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	v := New()

	err := v.Validate(testForm{})
	require.Error(t, err)
	assert.Equal(t,
		"validation failed: category is required, title is required, url is required",
		err.Error(),
	)

	err = v.Validate(testForm{Title: "T", URL: "http://x", Category: "tech", Note: "too long"})
	require.Error(t, err)
	assert.Equal(t, "validation failed: note is invalid", err.Error())
}
