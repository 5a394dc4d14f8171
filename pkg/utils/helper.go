package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateOTP creates a numeric OTP of specified length
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	rand.New(rand.NewSource(time.Now().UnixNano()))

	otp := ""
	for i := 0; i < length; i++ {
		otp += fmt.Sprintf("%d", rand.Intn(10))
	}

	return otp
}

// GenerateOrderNumber creates a unique order number.
// Format: YYYYMMDD + 5 random digits
func GenerateOrderNumber() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))

	datePart := time.Now().Format("20060102")
	randomPart := fmt.Sprintf("%05d", rand.Intn(100000))

	return datePart + randomPart
}

// GenerateInvoiceNumber derives the invoice number from its order.
// Format: NF-<order number>
func GenerateInvoiceNumber(orderNumber string) string {
	return "NF-" + orderNumber
}

// GeneratePaymentID creates a payment reference for a method.
// Format: METHOD_XXXXXXXXXX
func GeneratePaymentID(method string) string {
	rand.New(rand.NewSource(time.Now().UnixNano()))

	const hexDigits = "0123456789ABCDEF"
	ref := make([]byte, 10)
	for i := range ref {
		ref[i] = hexDigits[rand.Intn(len(hexDigits))]
	}

	return fmt.Sprintf("%s_%s", method, string(ref))
}
