package pkg

import (
	"fmt"
	"net/http"
)

// AppError is the canonical error shape handlers return to clients:
// a stable machine-readable code, a human message and the HTTP status to
// respond with. The wrapped cause never leaves the process.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int

	// Redirect carries the client-side navigation hint for session errors.
	Redirect string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the JSON body written for failed requests.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Redirect: e.Redirect}
}

// NewSessionExpiredError is the 401 shape for dead sessions: clients clear
// local session data and navigate to /login once.
func NewSessionExpiredError() *AppError {
	return &AppError{
		Code:       "SESSION_EXPIRED",
		Message:    "Session expired, sign in again",
		HTTPStatus: http.StatusUnauthorized,
		Redirect:   "/login",
	}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
