package utils

import (
	"math"
	"regexp"
)

// phoneRegex matches digits only, 10 to 15 characters
var phoneRegex = regexp.MustCompile(`^[0-9]{10,15}$`)

// IsValidPhone reports whether the phone number is digits only with an
// acceptable length
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidMoneyAmount reports whether the amount is positive with at most
// two decimal places
func IsValidMoneyAmount(amount float64) bool {
	if amount <= 0 {
		return false
	}
	cents := amount * 100
	return math.Abs(cents-math.Round(cents)) < 1e-9
}
