package httputil

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorToText returns a readable message for a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s must not be greater than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must not be less than %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of '%s'", e.Field(), strings.ReplaceAll(e.Param(), " ", "', '"))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// ValidationError wraps validator errors so that their message lists every
// failed field.
type ValidationError validator.ValidationErrors

func (v ValidationError) Error() string {
	texts := make([]string, 0, len(v))
	for _, e := range v {
		texts = append(texts, ValidationErrorToText(e))
	}
	return strings.Join(texts, ", ")
}
