// controller/album_controller.go
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

type AlbumController struct {
	albumService service.IAlbumService
}

func NewAlbumController(albumService service.IAlbumService) *AlbumController {
	return &AlbumController{
		albumService: albumService,
	}
}

// RegisterRoutes registers the album routes. Like endpoints require auth.
func (ac *AlbumController) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	albums := r.Group("/albums")
	{
		albums.POST("", ac.CreateAlbum)
		albums.GET("/:id", ac.GetAlbum)
		albums.PUT("/:id", ac.UpdateAlbum)
		albums.DELETE("/:id", ac.DeleteAlbum)
		albums.POST("/:id/covers", ac.UploadCover)
		albums.GET("/:id/covers/:filename", ac.ServeCover)
		albums.GET("/:id/likes", ac.GetAlbumLikes)
		albums.POST("/:id/likes", requireAuth, ac.LikeAlbum)
		albums.DELETE("/:id/likes", requireAuth, ac.UnlikeAlbum)
	}
}

// CreateAlbum endpoint
func (ac *AlbumController) CreateAlbum(c *gin.Context) {
	var payload model.AlbumPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	albumID, err := ac.albumService.CreateAlbum(c, payload)
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Album created", gin.H{"albumId": albumID})
}

// GetAlbum endpoint
func (ac *AlbumController) GetAlbum(c *gin.Context) {
	album, err := ac.albumService.GetAlbum(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "", gin.H{"album": album})
}

// UpdateAlbum endpoint
func (ac *AlbumController) UpdateAlbum(c *gin.Context) {
	var payload model.AlbumPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	if err := ac.albumService.UpdateAlbum(c, c.Param("id"), payload); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Album updated", nil)
}

// DeleteAlbum endpoint
func (ac *AlbumController) DeleteAlbum(c *gin.Context) {
	if err := ac.albumService.DeleteAlbum(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Album deleted", nil)
}

// UploadCover endpoint. Accepts multipart form data with a "cover" file.
func (ac *AlbumController) UploadCover(c *gin.Context) {
	file, err := c.FormFile("cover")
	if err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	coverURL, err := ac.albumService.UploadCover(c, c.Param("id"), file)
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Cover uploaded", gin.H{"coverUrl": coverURL})
}

// ServeCover endpoint streams a stored cover file.
func (ac *AlbumController) ServeCover(c *gin.Context) {
	path, err := ac.albumService.CoverFilePath(c.Param("filename"))
	if err != nil {
		c.Error(err)
		return
	}

	c.File(path)
}

// LikeAlbum endpoint
func (ac *AlbumController) LikeAlbum(c *gin.Context) {
	userID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := ac.albumService.LikeAlbum(c, userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Album liked", nil)
}

// UnlikeAlbum endpoint
func (ac *AlbumController) UnlikeAlbum(c *gin.Context) {
	userID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := ac.albumService.UnlikeAlbum(c, userID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Album unliked", nil)
}

// GetAlbumLikes endpoint. Flags cached responses via the data-source header.
func (ac *AlbumController) GetAlbumLikes(c *gin.Context) {
	likes, fromCache, err := ac.albumService.GetAlbumLikes(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	if fromCache {
		util.MarkCacheHit(c)
	}
	util.RespondSuccess(c, http.StatusOK, "", gin.H{"likes": likes})
}
