// errors/auth_errors.go
package errors

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrMissingToken        = errors.New("missing authentication token")
	ErrInvalidToken        = errors.New("invalid or expired access token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
