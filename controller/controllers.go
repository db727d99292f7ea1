// controller/controllers.go
package controller

import "github.com/openmusic-api/openmusic/service"

type Controllers struct {
	Album          *AlbumController
	Song           *SongController
	User           *UserController
	Authentication *AuthenticationController
	Playlist       *PlaylistController
	Collaboration  *CollaborationController
	Export         *ExportController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Album:          NewAlbumController(services.Album),
		Song:           NewSongController(services.Song),
		User:           NewUserController(services.User),
		Authentication: NewAuthenticationController(services.Authentication),
		Playlist:       NewPlaylistController(services.Playlist),
		Collaboration:  NewCollaborationController(services.Collaboration),
		Export:         NewExportController(services.Export),
	}
}
