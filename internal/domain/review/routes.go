package review

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/properties/:slug/reviews", h.List)
	r.POST("/properties/:slug/reviews", h.Add)
}
