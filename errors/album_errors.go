// errors/album_errors.go
package errors

import "errors"

var (
	ErrAlbumNotFound     = errors.New("album not found")
	ErrLikeNotFound      = errors.New("like not found")
	ErrAlbumAlreadyLiked = errors.New("album already liked")
	ErrCoverTooLarge     = errors.New("cover image exceeds the maximum allowed size")
	ErrInvalidCoverType  = errors.New("cover must be an image")
)
