// controller/export_controller.go
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

type ExportController struct {
	exportService service.IExportService
}

func NewExportController(exportService service.IExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// RegisterRoutes registers the export routes.
func (ec *ExportController) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	exports := r.Group("/export", requireAuth)
	{
		exports.POST("/playlists/:id", ec.ExportPlaylist)
	}
}

// ExportPlaylist endpoint. Responds as soon as the job is queued; the email
// is delivered by the worker.
func (ec *ExportController) ExportPlaylist(c *gin.Context) {
	userID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var payload model.ExportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	if err := ec.exportService.ExportPlaylist(c, c.Param("id"), userID, payload.TargetEmail); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Your request is being processed", nil)
}
