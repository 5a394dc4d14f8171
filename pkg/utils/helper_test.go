package utils

import (
	"strings"
	"testing"
	"time"
)

func TestParseInt(t *testing.T) {
	testCases := []struct {
		name         string
		value        string
		defaultValue int
		expected     int
	}{
		{
			name:         "should parse a valid number",
			value:        "25",
			defaultValue: 10,
			expected:     25,
		},
		{
			name:         "should return default for empty string",
			value:        "",
			defaultValue: 10,
			expected:     10,
		},
		{
			name:         "should return default for non-numeric input",
			value:        "abc",
			defaultValue: 5,
			expected:     5,
		},
		{
			name:         "should return default for zero",
			value:        "0",
			defaultValue: 1,
			expected:     1,
		},
		{
			name:         "should return default for negative numbers",
			value:        "-3",
			defaultValue: 1,
			expected:     1,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseInt(tt.value, tt.defaultValue)
			if result != tt.expected {
				t.Errorf("ParseInt(%q, %d) = %d, expected %d", tt.value, tt.defaultValue, result, tt.expected)
			}
		})
	}
}

func TestGenerateOTP(t *testing.T) {
	testCases := []struct {
		name        string
		length      int
		expectedLen int
	}{
		{name: "should generate 6 digits", length: 6, expectedLen: 6},
		{name: "should generate 4 digits", length: 4, expectedLen: 4},
		{name: "should fall back to 6 digits for zero", length: 0, expectedLen: 6},
		{name: "should fall back to 6 digits for negative", length: -1, expectedLen: 6},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			otp := GenerateOTP(tt.length)

			if len(otp) != tt.expectedLen {
				t.Errorf("GenerateOTP(%d) returned %q, expected %d digits", tt.length, otp, tt.expectedLen)
			}

			for _, c := range otp {
				if c < '0' || c > '9' {
					t.Errorf("GenerateOTP(%d) returned non-digit character %q", tt.length, c)
				}
			}
		})
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	orderNumber := GenerateOrderNumber()

	// YYYYMMDD + 5 random digits
	if len(orderNumber) != 13 {
		t.Fatalf("GenerateOrderNumber() = %q, expected 13 characters", orderNumber)
	}

	datePart := time.Now().Format("20060102")
	if !strings.HasPrefix(orderNumber, datePart) {
		t.Errorf("GenerateOrderNumber() = %q, expected prefix %q", orderNumber, datePart)
	}

	for _, c := range orderNumber {
		if c < '0' || c > '9' {
			t.Errorf("GenerateOrderNumber() returned non-digit character %q", c)
		}
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	testCases := []struct {
		name        string
		orderNumber string
		expected    string
	}{
		{
			name:        "should prefix the order number",
			orderNumber: "2026090112345",
			expected:    "NF-2026090112345",
		},
		{
			name:        "should handle empty order number",
			orderNumber: "",
			expected:    "NF-",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			result := GenerateInvoiceNumber(tt.orderNumber)
			if result != tt.expected {
				t.Errorf("GenerateInvoiceNumber(%q) = %q, expected %q", tt.orderNumber, result, tt.expected)
			}
		})
	}
}

func TestGeneratePaymentID(t *testing.T) {
	paymentID := GeneratePaymentID("PIX")

	parts := strings.SplitN(paymentID, "_", 2)
	if len(parts) != 2 {
		t.Fatalf("GeneratePaymentID(\"PIX\") = %q, expected METHOD_REF format", paymentID)
	}

	if parts[0] != "PIX" {
		t.Errorf("GeneratePaymentID(\"PIX\") method part = %q, expected %q", parts[0], "PIX")
	}

	if len(parts[1]) != 10 {
		t.Errorf("GeneratePaymentID(\"PIX\") reference %q, expected 10 characters", parts[1])
	}

	for _, c := range parts[1] {
		if !strings.ContainsRune("0123456789ABCDEF", c) {
			t.Errorf("GeneratePaymentID(\"PIX\") reference contains invalid character %q", c)
		}
	}
}
