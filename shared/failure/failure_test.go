package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"beauteefool/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("validation failed")), code: http.StatusBadRequest, message: "validation failed"},
		{name: "bad request from string", err: failure.BadRequestFromString("Please select a date"), code: http.StatusBadRequest, message: "Please select a date"},
		{name: "not found", err: failure.NotFound("draft not found"), code: http.StatusNotFound, message: "draft not found"},
		{name: "conflict", err: failure.Conflict("The selected time slot is no longer available"), code: http.StatusConflict, message: "The selected time slot is no longer available"},
		{name: "invalid api key", err: failure.InvalidAPIKey, code: http.StatusUnauthorized, message: "invalid api key"},
		{name: "unknown category", err: failure.UnknownCategory, code: http.StatusBadRequest, message: "unknown service category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.message)
		})
	}
}

func TestBadRequest_Nil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestUnprocessable(t *testing.T) {
	fields := map[string]string{"full_name": "Name must be at least 2 characters"}

	err := failure.Unprocessable("invalid customer info", fields)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, http.StatusUnprocessableEntity, fail.Code)
	assert.Equal(t, fields, fail.Fields)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure", input: failure.BadRequestFromString("x"), expected: http.StatusBadRequest},
		{name: "wrapped failure", input: fmt.Errorf("confirm booking: %w", failure.NotFound("draft not found")), expected: http.StatusNotFound},
		{name: "plain error", input: errors.New("connection refused"), expected: http.StatusInternalServerError},
		{name: "nil", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestGetFields(t *testing.T) {
	assert.Nil(t, failure.GetFields(errors.New("plain")))

	err := fmt.Errorf("wrap: %w", failure.Unprocessable("invalid", map[string]string{"phone": "bad"}))
	assert.Equal(t, "bad", failure.GetFields(err)["phone"])
}
