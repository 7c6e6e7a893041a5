package middleware

import (
	"fmt"
	"net/http"

	"news-api/helper"
	"news-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is the one place errors become responses. It renders the
// last error a handler recorded, after the rest of the chain has run.
func ErrorHandler(h *helper.HTTPHelper, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := helper.StatusCode(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		} else {
			logger.Debug("request rejected",
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.Int("status", status),
				zap.Error(err),
			)
		}

		if c.Writer.Written() {
			return
		}
		h.SendError(c, err)
	}
}

// NotFound answers every unmatched route.
func NotFound(c *gin.Context) {
	_ = c.Error(models.NewNotFound(fmt.Errorf("no route for %s %s", c.Request.Method, c.Request.URL.Path)))
	c.Abort()
}

// Recovery turns a panic into an internal error for ErrorHandler.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		_ = c.Error(&models.ErrorInternalServer{Err: fmt.Errorf("panic: %v", recovered)})
		c.Abort()
	})
}
