package account

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid_request")
	ErrEmailTaken      = errors.New("email_taken")
	ErrBadCredentials  = errors.New("bad_credentials")
	ErrUserNotFound    = errors.New("user_not_found")
	ErrSessionNotFound = errors.New("session_not_found")
)
