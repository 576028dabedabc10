package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{"1234567890", "123456789012345", "01710000000"}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{"", "12345", "1234567890123456", "12-34567890", "+8801710000000", "phone12345"}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), "expected %q to be invalid", phone)
	}
}

func TestIsValidMoneyAmount(t *testing.T) {
	valid := []float64{0.01, 1, 10.5, 99.99, 10000}
	for _, amount := range valid {
		assert.True(t, IsValidMoneyAmount(amount), "expected %v to be valid", amount)
	}

	invalid := []float64{0, -1, -0.01, 10.999, 0.001}
	for _, amount := range invalid {
		assert.False(t, IsValidMoneyAmount(amount), "expected %v to be invalid", amount)
	}
}
