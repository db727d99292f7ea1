// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"

	om_errors "github.com/openmusic-api/openmusic/errors"
)

// RespondSuccess writes the success envelope. Empty message and nil data are
// omitted from the body.
func RespondSuccess(c *gin.Context, code int, message string, data any) {
	body := gin.H{"status": "success"}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// MarkCacheHit flags a response as served from the cache.
func MarkCacheHit(c *gin.Context) {
	c.Header("X-Data-Source", "cache")
}

// GetCredentialID returns the authenticated user id set by the auth
// middleware.
func GetCredentialID(c *gin.Context) (string, error) {
	userID := c.GetString("userID")
	if userID == "" {
		return "", om_errors.ErrMissingToken
	}
	return userID, nil
}
