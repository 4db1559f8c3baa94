package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the caller identity. The gateway is trusted to
// have validated it; the main service still refuses requests without it.
const HeaderUserID = "X-Sharer-User-Id"

// ContextUserID is the gin context key the parsed user id is stored under.
const ContextUserID = "user_id"

// Identity extracts the caller id from the X-Sharer-User-Id header and
// puts it into the request context.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "MISSING_USER_HEADER",
					"message": "X-Sharer-User-Id header is required",
				},
			})
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_USER_HEADER",
					"message": "X-Sharer-User-Id must be a positive integer",
				},
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
