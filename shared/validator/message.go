package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"gt":       "{field} must be greater than {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be at most {param} characters",
	"min":      "{field} must be at least {param} characters",
	"eqfield":  "{field} and {param} are not the same",
	"gtefield": "{field} must not be before the {param} date",
	"nospace":  "{field} must not contain spaces",
	"usdate":   "{field} must be a date in MM/DD/YYYY format",
	"url":      "{field} must be a valid URL",
}

// describe renders the first broken rule of a validation error for the console.
func describe(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		template, ok := messages[fieldErr.Tag()]
		if !ok {
			continue
		}

		param := fieldErr.Param()
		// cross-field rules name the other struct field
		if strings.HasSuffix(fieldErr.Tag(), "field") {
			param = strings.ToLower(param)
		}

		return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", param).Replace(template)
	}

	return fieldErrors.Error()
}
