package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// POST is served on both /items and /items/ without a redirect.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	items := rg.Group("/items")
	{
		items.POST("", h.Create)
		items.POST("/", h.Create)
		items.GET("/category/:category", h.ListByCategory)
		items.GET("/:item_id", h.Detail)
		items.PUT("/:item_id", h.Update)
		items.DELETE("/:item_id", h.Delete)
	}
}
