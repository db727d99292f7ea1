// middleware/error_handler.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	om_errors "github.com/openmusic-api/openmusic/errors"
	logger "github.com/openmusic-api/openmusic/logging"
)

// ErrorHandler is the single boundary that turns recorded errors into
// response envelopes. Client faults become "fail" responses with the error's
// message; everything else becomes a generic "error" response so internals
// never leak to callers.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if code, ok := om_errors.ClientStatus(err); ok {
			c.JSON(code, gin.H{
				"status":  "fail",
				"message": err.Error(),
			})
			return
		}

		logger.Error("Unhandled server error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "something went wrong on our end",
		})
	}
}
