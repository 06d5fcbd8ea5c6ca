package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"beauteefool/shared/constant"
	"beauteefool/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	phoneCharsPattern = regexp.MustCompile(`^[\d\s()+-]+$`)
	clock12Pattern    = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5]\d\s(AM|PM)$`)
)

func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	contentType := file.Header.Get(constant.RequestHeaderContentType)
	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return file.Size <= maxSizeBytes
}

func registerPhoneDigitsValidation(field val.FieldLevel) bool {
	minDigits, err := strconv.Atoi(field.Param())
	if err != nil {
		return false
	}

	return len(DigitsOnly(field.Field().String())) >= minDigits
}

func matches(pattern *regexp.Regexp) val.Func {
	return func(field val.FieldLevel) bool {
		return pattern.MatchString(field.Field().String())
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	custom := map[string]val.Func{
		"empty":       func(fl val.FieldLevel) bool { return fl.Field().IsZero() },
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"personname":  matches(personNamePattern),
		"phonechars":  matches(phoneCharsPattern),
		"phonedigits": registerPhoneDigitsValidation,
		"clock12":     matches(clock12Pattern),
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// DigitsOnly strips every non-digit rune from value.
func DigitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, value)
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// Decode only decodes the JSON body; callers that need a field map call ValidateFields afterwards.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateFields validates every field of data and returns one message per failing field,
// keyed by the field's JSON name. overrides are looked up as "<field>.<tag>" before the
// generic message for the tag. A nil map means the struct is valid.
func ValidateFields[T any](data *T, overrides map[string]string) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		if _, seen := fields[valErr.Field()]; seen {
			continue
		}

		fields[valErr.Field()] = fieldMessage(valErr, overrides)
	}

	return fields
}
