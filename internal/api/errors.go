package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/task-manager-api/internal/api/shared"
	"github.com/phrazzld/task-manager-api/internal/store"
)

// MapErrorToStatusCode maps store errors to HTTP status codes. Anything
// unrecognized is a server fault, never a crash.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// violationsFromError converts a request decode or validation failure into
// the machine-readable field-violation list for the 422 body.
func violationsFromError(err error) []shared.FieldViolation {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]shared.FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, shared.FieldViolation{
				Field:   strings.ToLower(fe.Field()),
				Message: validationMessage(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []shared.FieldViolation{{
			Field:   field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
		}}
	}

	return []shared.FieldViolation{{
		Field:   "body",
		Message: "request body is not valid JSON",
	}}
}

// validationMessage maps validation tags to user-friendly error messages.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required and cannot be empty"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
