package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"email":       "{field} must be a valid email address",
		"url":         "{field} must be a valid URL",
		"personname":  "{field} can only contain letters, spaces, hyphens, and apostrophes",
		"phonechars":  "{field} can only contain numbers, spaces, and ()+-",
		"phonedigits": "{field} must have at least {param} digits",
		"clock12":     "{field} must look like 9:30 AM",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must be at most {param} MB",
	}
)

func render(template string, valErr val.FieldError) string {
	template = strings.ReplaceAll(template, "{field}", valErr.Field())

	return strings.ReplaceAll(template, "{param}", valErr.Param())
}

func fieldMessage(valErr val.FieldError, overrides map[string]string) string {
	if msg, ok := overrides[valErr.Field()+"."+valErr.Tag()]; ok {
		return render(msg, valErr)
	}

	if msg, ok := messages[valErr.Tag()]; ok {
		return render(msg, valErr)
	}

	return valErr.Error()
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr != "" {
				return render(errStr, valErr)
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
