package validator

import (
	"errors"
	"fmt"
	"strings"

	val "github.com/go-playground/validator/v10"

	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Struct validates any tagged struct and converts tag violations into a
// single validation Failure listing the offending fields.
func Struct(subject any) error {
	err := validate.Struct(subject)
	if err == nil {
		return nil
	}

	var invalid *val.InvalidValidationError
	if errors.As(err, &invalid) {
		return failure.Validation(invalid.Error())
	}

	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return failure.Validation(err.Error())
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, messageFor(fieldError))
	}

	return failure.Validation(strings.Join(messages, "; "))
}

func messageFor(fieldError val.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fieldError.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldError.Param())
	case "alphanum":
		return fmt.Sprintf("%s must be alphanumeric", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fieldError.Tag())
	}
}
