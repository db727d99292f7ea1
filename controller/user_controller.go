// controller/user_controller.go
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

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the user routes.
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup, _ gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.POST("", uc.Register)
		users.GET("/:id", uc.GetUser)
	}
}

// Register endpoint
func (uc *UserController) Register(c *gin.Context) {
	var payload model.UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	userID, err := uc.userService.Register(c, payload)
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "User registered", gin.H{"userId": userID})
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.userService.GetUser(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "", gin.H{"user": user})
}
