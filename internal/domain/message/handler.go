package message

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boolbnb/internal/domain/property"
	"boolbnb/internal/pkg/response"
	"boolbnb/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Contact godoc
// @Summary Send a message to the owner of a listing
// @Tags Messages
// @Accept json
// @Produce json
// @Param slug path string true "Listing slug"
// @Param request body ContactRequest true "Message"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /properties/{slug}/contact [post]
func (h *Handler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if _, err := h.service.Contact(c.Request.Context(), c.Param("slug"), &req); err != nil {
		switch {
		case validator.IsInvalid(err):
			response.BadRequest(c, err.Error())
		case errors.Is(err, property.ErrNotFound):
			response.NotFound(c, "Property not found")
		default:
			response.Internal(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent"})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/properties/:slug/contact", h.Contact)
}
