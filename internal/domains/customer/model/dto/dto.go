package dto

import (
	"strings"

	"beauteefool/internal/domains/customer/model"
	"beauteefool/shared/validator"
)

type CustomerRequest struct {
	FullName        string `json:"full_name"        validate:"required,min=2,max=100,personname"`
	Email           string `json:"email"            validate:"required,email,max=255"`
	Phone           string `json:"phone"            validate:"required,phonechars,phonedigits=10"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

var messages = map[string]string{
	"full_name.required":   "Name must be at least 2 characters",
	"full_name.min":        "Name must be at least 2 characters",
	"full_name.max":        "Name must be less than 100 characters",
	"full_name.personname": "Name can only contain letters, spaces, hyphens, and apostrophes",
	"email.required":       "Please enter a valid email address",
	"email.email":          "Please enter a valid email address",
	"email.max":            "Email must be less than 255 characters",
	"phone.required":       "Phone number must have at least 10 digits",
	"phone.phonechars":     "Phone number can only contain numbers, spaces, and ()+-",
	"phone.phonedigits":    "Phone number must have at least 10 digits",
	"special_requests.max": "Special requests must be less than 500 characters",
}

// Validate trims the request and checks every field. It returns the accepted record with
// the phone reduced to digits, or a field to message map when anything is rejected.
func (r CustomerRequest) Validate() (model.CustomerInfo, map[string]string) {
	trimmed := CustomerRequest{
		FullName:        strings.TrimSpace(r.FullName),
		Email:           strings.TrimSpace(r.Email),
		Phone:           strings.TrimSpace(r.Phone),
		SpecialRequests: strings.TrimSpace(r.SpecialRequests),
	}

	if fields := validator.ValidateFields(&trimmed, messages); fields != nil {
		return model.CustomerInfo{}, fields
	}

	return model.CustomerInfo{
		FullName:        trimmed.FullName,
		Email:           trimmed.Email,
		Phone:           validator.DigitsOnly(trimmed.Phone),
		SpecialRequests: trimmed.SpecialRequests,
	}, nil
}

func FromModel(info model.CustomerInfo) CustomerRequest {
	return CustomerRequest{
		FullName:        info.FullName,
		Email:           info.Email,
		Phone:           info.Phone,
		SpecialRequests: info.SpecialRequests,
	}
}

type CustomerResponse struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PhoneDisplay    string `json:"phone_display"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

func (r *CustomerResponse) FromModel(info model.CustomerInfo) {
	r.FullName = info.FullName
	r.Email = info.Email
	r.Phone = info.Phone
	r.PhoneDisplay = model.FormatPhone(info.Phone)
	r.SpecialRequests = info.SpecialRequests
}
