package middleware

import (
	"errors"
	"net/http"

	"career-platform-backend/internal/delivery/http/response"
	"career-platform-backend/pkg/apperror"
	"career-platform-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Internal details stay in the logs; clients only ever see a
				// generic message.
				requestID, _ := c.Get("RequestID")
				logger.Log.Error("unhandled request error",
					"request_id", requestID,
					"method", c.Request.Method,
					"path", c.FullPath(),
					"error", err.Error(),
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
