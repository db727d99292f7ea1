// controller/collaboration_controller.go
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

type CollaborationController struct {
	collaborationService service.ICollaborationService
}

func NewCollaborationController(collaborationService service.ICollaborationService) *CollaborationController {
	return &CollaborationController{
		collaborationService: collaborationService,
	}
}

// RegisterRoutes registers the collaboration routes. Owner-only, so auth is
// mandatory.
func (cc *CollaborationController) RegisterRoutes(r *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	collaborations := r.Group("/collaborations", requireAuth)
	{
		collaborations.POST("", cc.AddCollaboration)
		collaborations.DELETE("", cc.DeleteCollaboration)
	}
}

// AddCollaboration endpoint
func (cc *CollaborationController) AddCollaboration(c *gin.Context) {
	requesterID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var payload model.CollaborationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	collaborationID, err := cc.collaborationService.AddCollaboration(c, payload, requesterID)
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Collaboration added", gin.H{"collaborationId": collaborationID})
}

// DeleteCollaboration endpoint
func (cc *CollaborationController) DeleteCollaboration(c *gin.Context) {
	requesterID, err := util.GetCredentialID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var payload model.CollaborationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	if err := cc.collaborationService.DeleteCollaboration(c, payload, requesterID); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Collaboration removed", nil)
}
