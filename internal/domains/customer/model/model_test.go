package model_test

import (
	"regexp"
	"testing"

	"beauteefool/internal/domains/customer/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "5551234567", expected: "(555) 123-4567"},
		{input: "555 123 4567", expected: "(555) 123-4567"},
		{input: "(555) 123-4567", expected: "(555) 123-4567"},
		{input: "15551234567", expected: "15551234567"},
		{input: "555123", expected: "555123"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.FormatPhone(tt.input))
		})
	}
}

func TestFormatPhone_Shape(t *testing.T) {
	shape := regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)

	for _, digits := range []string{"0000000000", "9998887777", "2125550100"} {
		assert.Regexp(t, shape, model.FormatPhone(digits))
	}
}
