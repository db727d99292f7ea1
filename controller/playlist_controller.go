// controller/playlist_controller.go
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/model"
	"github.com/openmusic-api/openmusic/service"
	"github.com/openmusic-api/openmusic/util"
)

type PlaylistController struct {
	playlistService service.IPlaylistService
}

func NewPlaylistController(playlistService service.IPlaylistService) *PlaylistController {
	return &PlaylistController{
		playlistService: playlistService,
	}
}

// RegisterRoutes registers the playlist routes. Everything here requires
// auth.
func (pc *PlaylistController) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	playlists := r.Group("/playlists", requireAuth)
	{
		playlists.POST("", pc.CreatePlaylist)
		playlists.GET("", pc.GetPlaylists)
		playlists.DELETE("/:id", pc.DeletePlaylist)
		playlists.POST("/:id/songs", pc.AddPlaylistSong)
		playlists.GET("/:id/songs", pc.GetPlaylistSongs)
		playlists.DELETE("/:id/songs", pc.DeletePlaylistSong)
		playlists.GET("/:id/activities", pc.GetPlaylistActivities)
	}
}

// CreatePlaylist endpoint
func (pc *PlaylistController) CreatePlaylist(c *gin.Context) {
	userID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var payload model.PlaylistPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	playlistID, err := pc.playlistService.CreatePlaylist(c, payload.Name, userID)
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Playlist created", gin.H{"playlistId": playlistID})
}

// GetPlaylists endpoint. Lists owned and collaborated playlists; flags
// cached responses via the data-source header.
func (pc *PlaylistController) GetPlaylists(c *gin.Context) {
	userID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	playlists, fromCache, err := pc.playlistService.GetPlaylists(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	if fromCache {
		util.MarkCacheHit(c)
	}
	util.RespondSuccess(c, http.StatusOK, "", gin.H{"playlists": playlists})
}

// DeletePlaylist endpoint. Owner only.
func (pc *PlaylistController) DeletePlaylist(c *gin.Context) {
	userID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := pc.playlistService.DeletePlaylist(c, c.Param("id"), userID); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Playlist deleted", nil)
}

// AddPlaylistSong endpoint. Owner or collaborator.
func (pc *PlaylistController) AddPlaylistSong(c *gin.Context) {
	userID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var payload model.PlaylistSongPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	if err := pc.playlistService.AddPlaylistSong(c, c.Param("id"), payload.SongID, userID); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Song added to playlist", nil)
}

// GetPlaylistSongs endpoint. Owner or collaborator.
func (pc *PlaylistController) GetPlaylistSongs(c *gin.Context) {
	userID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	playlist, err := pc.playlistService.GetPlaylistSongs(c, c.Param("id"), userID)
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "", gin.H{"playlist": playlist})
}

// DeletePlaylistSong endpoint. Owner or collaborator.
func (pc *PlaylistController) DeletePlaylistSong(c *gin.Context) {
	userID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var payload model.PlaylistSongPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	if err := pc.playlistService.DeletePlaylistSong(c, c.Param("id"), payload.SongID, userID); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Song removed from playlist", nil)
}

// GetPlaylistActivities endpoint. Owner or collaborator; flags cached
// responses via the data-source header.
func (pc *PlaylistController) GetPlaylistActivities(c *gin.Context) {
	userID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	playlistID := c.Param("id")
	activities, fromCache, err := pc.playlistService.GetPlaylistActivities(c, playlistID, userID)
	if err != nil {
		c.Error(err)
		return
	}

	if fromCache {
		util.MarkCacheHit(c)
	}
	util.RespondSuccess(c, http.StatusOK, "", gin.H{
		"playlistId": playlistID,
		"activities": activities,
	})
}
