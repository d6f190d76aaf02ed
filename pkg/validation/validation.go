package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "librarian/pkg/domain-errors"
)

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate validates a struct using the default validator and returns a domain error
func Validate(req any) error {
	if err := defaultValidator.Struct(req); err != nil {
		return dErrors.New(dErrors.CodeValidation, ErrorMessage(err))
	}
	return nil
}

// fieldLabels overrides the capitalized JSON name in messages.
var fieldLabels = map[string]string{
	"isbn": "ISBN",
}

// label turns a JSON field name into the form used in messages, e.g. "email" -> "Email".
func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// ErrorMessage converts a validator error into a human-readable message
func ErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid request body"
	}

	fe := validationErrs[0]
	field := fe.Field()
	if field == "" {
		field = fe.StructField()
	}
	field = label(field)

	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is mandatory", field)
	case "notblank":
		return fmt.Sprintf("%s is mandatory", field)
	case "email":
		return fmt.Sprintf("%s provided should be valid", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Var validates a single value against a tag list, reporting errors under field.
func Var(field string, value any, tag string) error {
	err := defaultValidator.Var(value, tag)
	if err == nil {
		return nil
	}
	field = label(field)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		switch validationErrs[0].ActualTag() {
		case "required", "notblank":
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s is mandatory", field))
		case "email":
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s provided should be valid", field))
		case "max":
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must be at most %s", field, validationErrs[0].Param()))
		}
	}
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s is invalid", field))
}
