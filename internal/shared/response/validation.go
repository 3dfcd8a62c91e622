package response

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IsValidationError reports whether err came from request validation, so
// handlers can answer 400 instead of 500.
func IsValidationError(err error) bool {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		return true
	}

	var single validation.ErrorObject
	return errors.As(err, &single)
}
