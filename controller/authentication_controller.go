// controller/authentication_controller.go
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

type AuthenticationController struct {
	authenticationService service.IAuthenticationService
}

func NewAuthenticationController(authenticationService service.IAuthenticationService) *AuthenticationController {
	return &AuthenticationController{
		authenticationService: authenticationService,
	}
}

// RegisterRoutes registers the token lifecycle routes.
func (ac *AuthenticationController) RegisterRoutes(r *gin.RouterGroup, _ gin.HandlerFunc) {
	authentications := r.Group("/authentications")
	{
		authentications.POST("", ac.Login)
		authentications.PUT("", ac.Refresh)
		authentications.DELETE("", ac.Logout)
	}
}

// Login endpoint. Issues an access/refresh token pair.
func (ac *AuthenticationController) Login(c *gin.Context) {
	var payload model.LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	accessToken, refreshToken, err := ac.authenticationService.Login(c, payload)
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusCreated, "Authentication successful", gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Refresh endpoint. Exchanges a refresh token for a new access token.
func (ac *AuthenticationController) Refresh(c *gin.Context) {
	var payload model.RefreshPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	accessToken, err := ac.authenticationService.RefreshAccessToken(c, payload.RefreshToken)
	if err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Access token refreshed", gin.H{"accessToken": accessToken})
}

// Logout endpoint. Revokes the refresh token.
func (ac *AuthenticationController) Logout(c *gin.Context) {
	var payload model.RefreshPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(fmt.Errorf("%w: %v", om_errors.ErrInvalidPayload, err))
		return
	}

	if err := ac.authenticationService.Logout(c, payload.RefreshToken); err != nil {
		c.Error(err)
		return
	}

	util.RespondSuccess(c, http.StatusOK, "Refresh token revoked", nil)
}
