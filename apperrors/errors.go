package apperrors

import "net/http"

// AppError is an error with a stable machine-readable code that clients
// can branch on, plus the HTTP status it maps to.
type AppError struct {
	Code    string `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	// ErrLoginFailed covers both an unknown login and a wrong password.
	ErrLoginFailed = &AppError{Code: "login_failed", Status: http.StatusUnauthorized, Message: "invalid credentials"}

	// ErrUnknownToken means a token was supplied but resolves to no user.
	ErrUnknownToken = &AppError{Code: "unknown_token", Status: http.StatusUnauthorized, Message: "unknown token"}

	// ErrForbidden means no token was supplied or the user lacks the
	// required privilege.
	ErrForbidden = &AppError{Code: "forbidden", Status: http.StatusForbidden, Message: "access denied"}

	// ErrUserExist means the login is already taken.
	ErrUserExist = &AppError{Code: "user_exist", Status: http.StatusConflict, Message: "login already registered"}
)

// Unknown wraps an unexpected internal failure. The detail stays in the
// server logs; callers only ever see the opaque class.
func Unknown() *AppError {
	return &AppError{Code: "unknown", Status: http.StatusInternalServerError, Message: "internal error"}
}
