package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error carrying the HTTP status and the exact
// client-facing message of the legacy wire contract.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Message strings match the legacy service byte for byte; clients assert on
// them.
var (
	ErrMissingFields      = New("MISSING_FIELDS", http.StatusBadRequest, "Missing fields")
	ErrMissingAssignment  = New("MISSING_FIELDS", http.StatusBadRequest, "Missing assignment details")
	ErrMissingRemarks     = New("MISSING_FIELDS", http.StatusBadRequest, "Missing remarks")
	ErrUsernameExists     = New("USERNAME_EXISTS", http.StatusConflict, "Username already exists")
	ErrInvalidUsername    = New("INVALID_USERNAME", http.StatusUnauthorized, "Invalid username")
	ErrInvalidPassword    = New("INVALID_PASSWORD", http.StatusUnauthorized, "Invalid password")
	ErrNoFilePart         = New("NO_FILE", http.StatusBadRequest, "No file part")
	ErrNoFileOrUsername   = New("NO_FILE", http.StatusBadRequest, "No selected file or student username")
	ErrMissingCertUpload  = New("NO_FILE", http.StatusBadRequest, "Missing student username or file")
	ErrFileTypeNotAllowed = New("FILE_TYPE_NOT_ALLOWED", http.StatusBadRequest, "File type not allowed")
	ErrInvalidStatus      = New("INVALID_STATUS", http.StatusBadRequest, "Invalid status")
	ErrInvalidQuery       = New("INVALID_QUERY", http.StatusBadRequest, "Invalid query parameters")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "Not found")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// RoleMismatch reports a login with the wrong role, echoing the requested
// role in the message as the legacy service did.
func RoleMismatch(role string) *Error {
	return New("ROLE_MISMATCH", http.StatusUnauthorized, fmt.Sprintf("User is not a %s", role))
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}
