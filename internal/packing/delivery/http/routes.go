package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	sessions := rg.Group("/packing/sessions")
	{
		sessions.POST("", h.Create)
		sessions.GET("/:id", h.Detail)
		sessions.DELETE("/:id", h.Close)
		sessions.GET("/:id/markdown", h.Export)
		sessions.POST("/:id/items", h.AddItem)
		sessions.DELETE("/:id/items/:item_id", h.DeleteItem)
		sessions.POST("/:id/items/:item_id/toggle", h.Toggle)
		sessions.POST("/:id/items/:item_id/edit", h.StartEdit)
		sessions.POST("/:id/commit", h.CommitEdit)
	}
}
