package errors

import "net/http"

// Validation builds the 422 exception for a malformed input field.
func Validation(field, message string) *Exception {
	return &Exception{
		Message:    message,
		Field:      field,
		StatusCode: http.StatusUnprocessableEntity,
	}
}
