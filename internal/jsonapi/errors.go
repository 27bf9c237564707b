package jsonapi

import (
	"net/http"
	"strconv"
)

// ValidationErrorTitle is the title carried by every validation error object.
const ValidationErrorTitle = "Validation Error"

// ErrorDocument is a top-level document carrying errors instead of data.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// ErrorObject describes a single problem. The human readable message travels in
// "details" rather than the standard "detail" member; existing clients read it there.
type ErrorObject struct {
	Status  string       `json:"status,omitempty"`
	Title   string       `json:"title"`
	Details string       `json:"details,omitempty"`
	Source  *ErrorSource `json:"source,omitempty"`
}

// ErrorSource points at the part of the request document that caused the error.
type ErrorSource struct {
	Pointer string `json:"pointer"`
}

// NewError builds an error object whose title is the HTTP status text.
func NewError(status int, details string) ErrorObject {
	return ErrorObject{
		Status:  strconv.Itoa(status),
		Title:   http.StatusText(status),
		Details: details,
	}
}

// NewValidationError builds the error object for a failed rule at pointer.
func NewValidationError(pointer string, rule Rule) ErrorObject {
	return ErrorObject{
		Title:   ValidationErrorTitle,
		Details: RenderMessage(pointer, rule),
		Source:  &ErrorSource{Pointer: pointer},
	}
}
