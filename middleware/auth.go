// middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/util"
)

// Auth verifies the bearer access token and stores the authenticated user id
// on the request context. Failures are recorded for the error boundary and
// abort the chain.
func Auth(tokenManager *util.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Error(om_errors.ErrMissingToken)
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.Error(om_errors.ErrInvalidToken)
			c.Abort()
			return
		}

		userID, err := tokenManager.VerifyAccessToken(tokenString)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
