package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindErrorMessage turns a gin binding failure into a client-facing message.
// Field-level validation failures are listed per field; anything else (bad
// JSON, wrong types) falls back to the raw error text.
func bindErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		parts := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			parts = append(parts, fmt.Sprintf("%s failed on the %q rule", fe.Field(), fe.Tag()))
		}
		return "Validation failed: " + strings.Join(parts, "; ")
	}
	return "Invalid request format: " + err.Error()
}
