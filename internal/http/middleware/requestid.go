package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"muaiadhadad.me/portfolio/common/id"
	"muaiadhadad.me/portfolio/common/logger"
)

const HeaderRequestID = "X-Request-Id"

// RequestID assigns every request a snowflake ID (or propagates the caller's)
// and threads it through the context so all logs carry it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = strconv.FormatInt(id.New(), 10)
		}

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{RequestID: rid})
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(HeaderRequestID, rid)

		c.Next()
	}
}
