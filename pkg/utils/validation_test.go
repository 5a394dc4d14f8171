package utils

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
	Role  string `validate:"omitempty,oneof=customer vendor"`
}

func TestValidateStruct(t *testing.T) {
	testCases := []struct {
		name           string
		input          sampleRequest
		expectedFields []string
	}{
		{
			name:           "should pass for a valid struct",
			input:          sampleRequest{Email: "user@example.com", Code: "482913", Role: "customer"},
			expectedFields: nil,
		},
		{
			name:           "should report missing required fields",
			input:          sampleRequest{},
			expectedFields: []string{"Email", "Code"},
		},
		{
			name:           "should report malformed email",
			input:          sampleRequest{Email: "not-an-email", Code: "482913"},
			expectedFields: []string{"Email"},
		},
		{
			name:           "should report wrong code length",
			input:          sampleRequest{Email: "user@example.com", Code: "12"},
			expectedFields: []string{"Code"},
		},
		{
			name:           "should report unknown role",
			input:          sampleRequest{Email: "user@example.com", Code: "482913", Role: "driver"},
			expectedFields: []string{"Role"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateStruct(tt.input)

			if len(errors) != len(tt.expectedFields) {
				t.Fatalf("ValidateStruct() returned %d errors (%v), expected %d", len(errors), errors, len(tt.expectedFields))
			}

			for _, field := range tt.expectedFields {
				if _, ok := errors[field]; !ok {
					t.Errorf("ValidateStruct() missing error for field %q, got %v", field, errors)
				}
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	formatted := FormatValidationErrors(map[string]string{
		"Email": "Invalid email format",
	})

	if formatted != "Email: Invalid email format" {
		t.Errorf("FormatValidationErrors() = %q", formatted)
	}

	multi := FormatValidationErrors(map[string]string{
		"Email": "This field is required",
		"Code":  "This field is required",
	})

	if !strings.Contains(multi, "Email: This field is required") || !strings.Contains(multi, "Code: This field is required") {
		t.Errorf("FormatValidationErrors() = %q, expected both fields", multi)
	}
	if !strings.Contains(multi, "; ") {
		t.Errorf("FormatValidationErrors() = %q, expected semicolon separator", multi)
	}
}
