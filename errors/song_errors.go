// errors/song_errors.go
package errors

import "errors"

var ErrSongNotFound = errors.New("song not found")
