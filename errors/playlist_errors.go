// errors/playlist_errors.go
package errors

import "errors"

var (
	ErrPlaylistNotFound      = errors.New("playlist not found")
	ErrNotPlaylistOwner      = errors.New("only the playlist owner may do this")
	ErrPlaylistAccessDenied  = errors.New("you do not have access to this playlist")
	ErrSongAlreadyInPlaylist = errors.New("song already in playlist")
	ErrSongNotInPlaylist     = errors.New("song not in playlist")
)
