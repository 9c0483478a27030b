package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"item-store-api/pkg/response"
)

// Recovery turns a panic in any later handler into a 500 with the standard error body.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic recovered: %v", recovered)
		response.InternalError(c, fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
