package like

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	likes := r.Group("/likes")
	{
		likes.GET("/check", h.Check)
		likes.POST("/toggle", h.Toggle)
		likes.POST("", h.Add)
		likes.GET("/count/:property_id", h.Count)
	}
}
