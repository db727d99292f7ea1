// controller/song_controller.go
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

type SongController struct {
	songService service.ISongService
}

func NewSongController(songService service.ISongService) *SongController {
	return &SongController{
		songService: songService,
	}
}

// RegisterRoutes registers the song routes. All are public.
func (sc *SongController) RegisterRoutes(r *gin.RouterGroup, _ gin.HandlerFunc) {
	songs := r.Group("/songs")
	{
		songs.POST("", sc.CreateSong)
		songs.GET("", sc.ListSongs)
		songs.GET("/:id", sc.GetSong)
		songs.PUT("/:id", sc.UpdateSong)
		songs.DELETE("/:id", sc.DeleteSong)
	}
}

// CreateSong endpoint
func (sc *SongController) CreateSong(c *gin.Context) {
	var payload model.SongPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	songID, err := sc.songService.CreateSong(c, payload)
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Song created", gin.H{"songId": songID})
}

// ListSongs endpoint. Supports optional title and performer filters which
// combine conjunctively.
func (sc *SongController) ListSongs(c *gin.Context) {
	songs, err := sc.songService.ListSongs(c, c.Query("title"), c.Query("performer"))
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "", gin.H{"songs": songs})
}

// GetSong endpoint
func (sc *SongController) GetSong(c *gin.Context) {
	song, err := sc.songService.GetSong(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "", gin.H{"song": song})
}

// UpdateSong endpoint
func (sc *SongController) UpdateSong(c *gin.Context) {
	var payload model.SongPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	if err := sc.songService.UpdateSong(c, c.Param("id"), payload); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Song updated", nil)
}

// DeleteSong endpoint
func (sc *SongController) DeleteSong(c *gin.Context) {
	if err := sc.songService.DeleteSong(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Song deleted", nil)
}
