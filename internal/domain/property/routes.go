package property

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	properties := r.Group("/properties")
	{
		properties.GET("", h.Search)            // GET /properties?searchTerm=...&minRooms=...
		properties.POST("", h.Create)           // POST /properties (json or multipart)
		properties.GET("/by-id/:id", h.GetByID) // GET /properties/by-id/:id
		properties.GET("/:slug", h.GetBySlug)   // GET /properties/:slug
		properties.PATCH("/:slug/like", h.Like) // PATCH /properties/:slug/like
	}

	r.GET("/api/property-types", h.ListTypes)
}
