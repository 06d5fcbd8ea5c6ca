package model

import (
	"fmt"

	"beauteefool/shared/validator"
)

const phoneDigits = 10

// CustomerInfo is the contact record attached to a draft and frozen into a booking.
// Phone holds digits only once validated.
type CustomerInfo struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// FormatPhone renders a 10-digit number as "(555) 123-4567". Anything else is returned unchanged.
func FormatPhone(phone string) string {
	digits := validator.DigitsOnly(phone)
	if len(digits) != phoneDigits {
		return phone
	}

	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}
