package image

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/properties/:slug/images", h.List)
	r.POST("/properties/:slug/images", h.Upload)
}
