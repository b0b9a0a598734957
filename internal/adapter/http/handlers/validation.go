package handlers

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"checkout_xpto/pkg"

	"github.com/go-playground/validator/v10"
)

// bindingAppError turns a gin binding failure into the uniform validation
// envelope, flattening validator errors into a field-path → messages map.
func bindingAppError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pkg.NewValidationError("Invalid request data", nil)
	}

	fieldErrors := map[string][]string{}
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		fieldErrors[path] = append(fieldErrors[path], validationMessage(fe))
	}
	return pkg.NewValidationError("Invalid request data", fieldErrors)
}

// fieldPath converts a validator namespace like
// "OrderCreateRequest.Payments[0].Token" into "payments[0].token".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snakeCase(part)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsUpper(rune(s[i-1])) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " characters/items"
	case "max":
		return "must have at most " + fe.Param() + " characters/items"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed validation %q", fe.Tag())
	}
}
