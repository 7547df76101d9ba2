package review

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

// List godoc
// @Summary List reviews of a listing, newest first
// @Tags Reviews
// @Produce json
// @Param slug path string true "Listing slug"
// @Success 200 {array} domain.Review
// @Failure 404,500 {object} map[string]interface{}
// @Router /properties/{slug}/reviews [get]
func (h *Handler) List(c *gin.Context) {
	reviews, err := h.service.ListBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Add godoc
// @Summary Review a listing
// @Tags Reviews
// @Accept json
// @Produce json
// @Param slug path string true "Listing slug"
// @Param request body AddRequest true "Review"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /properties/{slug}/reviews [post]
func (h *Handler) Add(c *gin.Context) {
	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	rv, err := h.service.Add(c.Request.Context(), c.Param("slug"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review added", "review": rv})
}

func handleError(c *gin.Context, err error) {
	switch {
	case validator.IsInvalid(err):
		response.BadRequest(c, err.Error())
	case errors.Is(err, property.ErrNotFound):
		response.NotFound(c, "Property not found")
	default:
		response.Internal(c, err)
	}
}
