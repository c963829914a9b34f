package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidLoginBody   = errors.New("upstream login body is not valid JSON")
)

// LoginError is an upstream rejection of a login attempt
type LoginError struct {
	StatusCode int
	Message    string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login rejected with status %d: %s", e.StatusCode, e.Message)
}

// IsLoginError reports whether err carries an upstream rejection
func IsLoginError(err error) (*LoginError, bool) {
	var loginErr *LoginError
	if errors.As(err, &loginErr) {
		return loginErr, true
	}
	return nil, false
}
