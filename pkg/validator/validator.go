package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their json name so error maps match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors converts validator errors into the field -> messages
// map used by the 422 envelope.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string][]string {
	errors := make(map[string][]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			errors[field] = append(errors[field], messageFor(field, e))
		}
	}

	return errors
}

func messageFor(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", field, e.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", field, e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("The %s must not be greater than %s characters.", field, e.Param())
		}
		return fmt.Sprintf("The %s must not be greater than %s.", field, e.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "datetime":
		return fmt.Sprintf("The %s does not match the format %s.", field, e.Param())
	case "numeric", "number":
		return fmt.Sprintf("The %s must be a number.", field)
	case "gt", "gte":
		return fmt.Sprintf("The %s must be greater than or equal to %s.", field, e.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}
