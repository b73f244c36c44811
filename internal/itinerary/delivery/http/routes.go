package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	itineraries := rg.Group("/itineraries")
	{
		itineraries.POST("", h.Generate)
		itineraries.POST("/parse", h.Parse)
	}
}
