package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrorMessage turns a gin binding failure into a response message.
// Validation failures name the offending fields; anything else (malformed
// JSON, type mismatches) gets a generic message.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format"
	}

	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[i] = fe.Field() + " is required"
		case "min":
			fields[i] = fe.Field() + " must have at least " + fe.Param()
		default:
			fields[i] = fe.Field() + " is invalid"
		}
	}
	return "Validation failed: " + strings.Join(fields, ", ")
}
