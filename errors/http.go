// errors/http.go
package errors

import (
	"errors"
	"net/http"
)

// Client-fault kinds, grouped by the status code they map to. Anything not
// listed here is a server fault and must be hidden behind a generic message.
var (
	validationFaults = []error{
		ErrInvalidPayload,
		ErrCoverTooLarge,
		ErrInvalidCoverType,
	}
	authenticationFaults = []error{
		ErrInvalidCredentials,
		ErrMissingToken,
		ErrInvalidToken,
		ErrInvalidRefreshToken,
	}
	forbiddenFaults = []error{
		ErrNotPlaylistOwner,
		ErrPlaylistAccessDenied,
	}
	notFoundFaults = []error{
		ErrAlbumNotFound,
		ErrLikeNotFound,
		ErrSongNotFound,
		ErrUserNotFound,
		ErrPlaylistNotFound,
		ErrSongNotInPlaylist,
		ErrCollaborationNotFound,
	}
	conflictFaults = []error{
		ErrAlbumAlreadyLiked,
		ErrUsernameTaken,
		ErrSongAlreadyInPlaylist,
		ErrCollaborationConflict,
	}
)

// ClientStatus reports the HTTP status code for a recognized client fault.
// The second return is false for server faults.
func ClientStatus(err error) (int, bool) {
	switch {
	case matchesAny(err, validationFaults):
		return http.StatusBadRequest, true
	case matchesAny(err, authenticationFaults):
		return http.StatusUnauthorized, true
	case matchesAny(err, forbiddenFaults):
		return http.StatusForbidden, true
	case matchesAny(err, notFoundFaults):
		return http.StatusNotFound, true
	case matchesAny(err, conflictFaults):
		return http.StatusConflict, true
	}
	return 0, false
}

func matchesAny(err error, kinds []error) bool {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
