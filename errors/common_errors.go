// errors/common_errors.go
package errors

import "errors"

var (
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
)
