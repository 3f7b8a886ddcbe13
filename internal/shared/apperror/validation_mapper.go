package apperror

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// Fallback Go field names ("DatasetPath") pass through untouched; only
	// snake_case tag names get the human treatment.
	if !strings.Contains(s, "_") {
		return s
	}
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// RequiredField builds an INVALID_INPUT error for a missing field.
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field))
}

// InvalidField builds an INVALID_INPUT error for a field that failed validation.
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field))
}

// MapValidationError converts a validator.ValidationErrors into an AppError
// describing the first failing field. e.Field() yields the csv tag name when
// Init has been applied to the validator.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required", "required_if":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return Wrap(err, CodeInvalidInput, "Invalid input")
}
