package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"uuid":     "{field} must be a valid uuid",
		"datetime": "{field} must match the {param} layout",
		"gtfield":  "{field} must be after {param}",
		"eqfield":  "{field} must match {param}",
		"nefield":  "{field} must differ from {param}",
		"e164":     "{field} must be an E.164 phone number",
		"iso4217":  "{field} must be an ISO 4217 currency code",

		"bcp47_language_tag": "{field} must be a BCP 47 language tag",

		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must not exceed {param} MB",
		"notpast":     "{field} cannot be in the past",
	}
)

func render(fieldErr val.FieldError, field string) (string, bool) {
	tmpl, ok := messages[fieldErr.Tag()]
	if !ok {
		return "", false
	}

	return strings.NewReplacer("{field}", field, "{param}", fieldErr.Param()).Replace(tmpl), true
}

func message(err error) string {
	return messageFor(err, "")
}

// messageFor renders the first known failure; field overrides the struct field name, which is
// empty for single variable checks.
func messageFor(err error, field string) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, fieldErr := range valErrors {
		name := field
		if name == "" {
			name = fieldErr.Field()
		}

		if msg, ok := render(fieldErr, name); ok {
			return msg
		}
	}

	return valErrors.Error()
}
