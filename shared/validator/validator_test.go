package validator_test

import (
	"strings"
	"testing"

	"beauteefool/shared/validator"

	"github.com/stretchr/testify/assert"
)

type contactForm struct {
	Name  string `json:"name"  validate:"required,min=2,max=100,personname"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"required,phonechars,phonedigits=10"`
	Time  string `json:"time"  validate:"omitempty,clock12"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        contactForm
		expectError bool
	}{
		{
			name:        "valid struct",
			data:        contactForm{Name: "Mary-Jane O'Neil", Email: "mj@example.com", Phone: "+1 (555) 123-4567", Time: "9:30 AM"},
			expectError: false,
		},
		{
			name:        "missing required field",
			data:        contactForm{Email: "mj@example.com", Phone: "5551234567"},
			expectError: true,
		},
		{
			name:        "digits in name",
			data:        contactForm{Name: "R2D2", Email: "mj@example.com", Phone: "5551234567"},
			expectError: true,
		},
		{
			name:        "letters in phone",
			data:        contactForm{Name: "Mary", Email: "mj@example.com", Phone: "555-CALL-NOW1"},
			expectError: true,
		},
		{
			name:        "too few phone digits",
			data:        contactForm{Name: "Mary", Email: "mj@example.com", Phone: "(555) 123-456"},
			expectError: true,
		},
		{
			name:        "24 hour clock rejected",
			data:        contactForm{Name: "Mary", Email: "mj@example.com", Phone: "5551234567", Time: "18:00"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "test@example.com", tag: "email"},
		{name: "invalid email", field: "invalid-email", tag: "email", expectError: true},
		{name: "valid oneof", field: "hair", tag: "oneof=hair nails makeup spa facial"},
		{name: "invalid oneof", field: "barber", tag: "oneof=hair nails makeup spa facial", expectError: true},
		{name: "valid clock", field: "12:00 PM", tag: "clock12"},
		{name: "invalid clock", field: "12:00PM", tag: "clock12", expectError: true},
		{name: "single digit hour", field: "9:30 AM", tag: "clock12"},
		{name: "padded hour", field: "09:30 AM", tag: "clock12"},
		{name: "hour past twelve", field: "13:00 PM", tag: "clock12", expectError: true},
		{name: "hour zero", field: "0:30 AM", tag: "clock12", expectError: true},
		{name: "minute past fifty nine", field: "9:60 AM", tag: "clock12", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Jo","email":"jo@example.com","phone":"555 123 4567"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"name":"Jo","email":"invalid-email","phone":"555 123 4567"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Jo","email":}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data contactForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFields(t *testing.T) {
	data := contactForm{Name: "J", Email: "nope", Phone: "12"}

	fields := validator.ValidateFields(&data, map[string]string{
		"name.min": "Name must be at least {param} characters",
	})

	assert.Equal(t, "Name must be at least 2 characters", fields["name"])
	assert.Equal(t, "email must be a valid email address", fields["email"])
	assert.Contains(t, fields, "phone")
	assert.NotContains(t, fields, "time")
}

func TestValidateFields_Valid(t *testing.T) {
	data := contactForm{Name: "Jo", Email: "jo@example.com", Phone: "555 123 4567"}

	assert.Nil(t, validator.ValidateFields(&data, nil))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "15551234567", validator.DigitsOnly("+1 (555) 123-4567"))
	assert.Equal(t, "", validator.DigitsOnly("abc"))
}
