// errors/collaboration_errors.go
package errors

import "errors"

var (
	ErrCollaborationNotFound = errors.New("collaboration not found")
	ErrCollaborationConflict = errors.New("user is already a collaborator")
)
